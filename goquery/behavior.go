package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/probset"
)

var (
	// premiseRe matches the number that opens a yes/no premise line.
	premiseRe = regexp.MustCompile(`^(\d+)\)`)

	// sentenceRe captures the text after a "(N)" sentence number up to the
	// next parenthesis or line break.
	sentenceRe = regexp.MustCompile(`\(\d+\)([^(\n)]*)`)

	// basisLineRe captures numbered basis lines.
	basisLineRe = regexp.MustCompile(`(?m)^\d+\)([^\n]*)`)

	// sentenceRefRe matches the sentence reference of a basis line.
	sentenceRefRe = regexp.MustCompile(`\(предложение \d\)`)

	// solutionAnswerRe captures the answer from a solution, which ends at a
	// no-break space or a period.
	solutionAnswerRe = regexp.MustCompile(`Ответ: ([^\x{a0}.]*)`)

	// alternativeRe matches alternative answers following the first one.
	alternativeRe = regexp.MustCompile(`(?:ИЛИ|или|\|).*`)

	guillemets = strings.NewReplacer("«", "", "»", "")
)

// extractDefault emits the first body line and the answer of every block.
func (e *Extractor) extractDefault(doc *goquery.Document) ([]probset.Record, error) {
	blocks := doc.Find(problemSelector)
	records := make([]probset.Record, 0, blocks.Length())

	for i := range blocks.Length() {
		block := blocks.Eq(i)

		body, err := find(block, bodySelector, probset.BehaviorDefault, i)
		if err != nil {
			return nil, err
		}
		line, err := find(body, lineSelector, probset.BehaviorDefault, i)
		if err != nil {
			return nil, err
		}
		answer, err := find(block, answerSelector, probset.BehaviorDefault, i)
		if err != nil {
			return nil, err
		}

		records = append(records, probset.NewRecord(
			probset.Field{Name: probset.FieldText, Value: e.normalizer.Normalize(line.Text())},
			probset.Field{Name: probset.FieldAnswer, Value: e.answer(answer.Text())},
		))
	}

	return records, nil
}

// extractYesNo emits one statement per numbered premise line. A premise
// is labelled true when its number occurs anywhere in the answer text, so
// premise 1 also matches an answer of "10". Whitespace before the
// premise number is ignored.
func (e *Extractor) extractYesNo(doc *goquery.Document) ([]probset.Record, error) {
	blocks := doc.Find(problemSelector)
	var records []probset.Record

	for i := range blocks.Length() {
		block := blocks.Eq(i)

		body, err := find(block, bodySelector, probset.BehaviorYesNo, i)
		if err != nil {
			return nil, err
		}
		answer, err := find(block, answerSelector, probset.BehaviorYesNo, i)
		if err != nil {
			return nil, err
		}
		answerText := e.answer(answer.Text())

		body.Find(lineSelector).Each(func(_ int, line *goquery.Selection) {
			text := strings.TrimLeft(line.Text(), " \t\r\n")
			m := premiseRe.FindStringSubmatch(text)
			if m == nil {
				return
			}
			records = append(records, probset.NewRecord(
				probset.Field{Name: probset.FieldStatement, Value: e.normalizer.Normalize(text[len(m[0]):])},
				probset.Field{Name: probset.FieldLabel, Value: strings.Contains(answerText, m[1])},
			))
		})
	}

	return records, nil
}

// extractTable pairs every other body, starting with the first, with the
// last cell of each result row. Extra bodies or rows are ignored.
func (e *Extractor) extractTable(doc *goquery.Document) ([]probset.Record, error) {
	bodies := doc.Find(bodySelector)
	var tasks []string
	for i := 0; i < bodies.Length(); i += 2 {
		tasks = append(tasks, e.normalizer.Normalize(bodies.Eq(i).Text()))
	}

	rows := doc.Find(resultRowSelector)
	answers := make([]string, 0, rows.Length())
	for i := range rows.Length() {
		cell, err := lastCell(rows.Eq(i), i)
		if err != nil {
			return nil, err
		}
		answers = append(answers, e.normalizer.Normalize(cell.Text()))
	}

	n := min(len(tasks), len(answers))
	records := make([]probset.Record, 0, n)
	for i := range n {
		records = append(records, probset.NewRecord(
			probset.Field{Name: probset.FieldText, Value: tasks[i]},
			probset.Field{Name: probset.FieldAnswer, Value: answers[i]},
		))
	}

	return records, nil
}

func lastCell(row *goquery.Selection, index int) (*goquery.Selection, error) {
	cells := row.Find("td")
	if cells.Length() == 0 {
		return nil, probset.Errorf(probset.ESTRUCTURE, "%s: result row %d: missing td", probset.BehaviorTable, index+1)
	}
	return cells.Last(), nil
}

// extractBasis emits numbered sentences paired positionally with the
// numbered basis lines that follow them. The answer lists the numbers of
// the pairs where the basis is correct. Blocks without a sentence
// reference are not basis problems and are skipped.
func (e *Extractor) extractBasis(doc *goquery.Document) ([]probset.Record, error) {
	blocks := doc.Find(problemSelector)
	var records []probset.Record

	for i := range blocks.Length() {
		block := blocks.Eq(i)

		answer, err := find(block, answerSelector, probset.BehaviorBasis, i)
		if err != nil {
			return nil, err
		}
		keys := strings.ReplaceAll(answer.Text(), answerPrefix, "")
		keys, _, _ = strings.Cut(keys, "|")

		body, err := find(block, bodySelector, probset.BehaviorBasis, i)
		if err != nil {
			return nil, err
		}

		// The first two lines hold the task statement.
		var lines []string
		body.Find(lineSelector).Each(func(j int, line *goquery.Selection) {
			if j >= 2 {
				lines = append(lines, line.Text())
			}
		})
		blob := strings.Join(lines, "\n")
		if !sentenceRefRe.MatchString(blob) {
			continue
		}

		sentences := sentenceRe.FindAllStringSubmatch(blob, -1)
		bases := basisLineRe.FindAllStringSubmatch(blob, -1)
		for j := range min(len(sentences), len(bases)) {
			basis := sentenceRefRe.ReplaceAllString(bases[j][1], "")
			records = append(records, probset.NewRecord(
				probset.Field{Name: probset.FieldSentence, Value: e.normalizer.Normalize(sentences[j][1])},
				probset.Field{Name: probset.FieldBasis, Value: e.normalizer.Normalize(basis)},
				probset.Field{Name: probset.FieldLabel, Value: strings.Contains(keys, strconv.Itoa(j+1))},
			))
		}
	}

	return records, nil
}

// extractPhraseConn emits the two bold spans of a block as phrase and
// connection, with the first answer given in the solution. Blocks without
// exactly two bold spans are skipped.
func (e *Extractor) extractPhraseConn(doc *goquery.Document) ([]probset.Record, error) {
	blocks := doc.Find(problemSelector)
	var records []probset.Record

	for i := range blocks.Length() {
		block := blocks.Eq(i)

		body, err := find(block, bodySelector, probset.BehaviorPhraseConn, i)
		if err != nil {
			return nil, err
		}
		bold := body.Find("b")
		if bold.Length() != 2 {
			continue
		}

		solution, err := find(block, solutionSelector, probset.BehaviorPhraseConn, i)
		if err != nil {
			return nil, err
		}
		m := solutionAnswerRe.FindStringSubmatch(solution.Text())
		if m == nil {
			return nil, probset.Errorf(probset.ESTRUCTURE, "%s: block %d: solution has no answer", probset.BehaviorPhraseConn, i+1)
		}

		records = append(records, probset.NewRecord(
			probset.Field{Name: probset.FieldPhrase, Value: e.normalizer.Normalize(guillemets.Replace(bold.Eq(0).Text()))},
			probset.Field{Name: probset.FieldConnection, Value: e.normalizer.Normalize(bold.Eq(1).Text())},
			probset.Field{Name: probset.FieldAnswer, Value: e.normalizer.Normalize(alternativeRe.ReplaceAllString(m[1], ""))},
		))
	}

	return records, nil
}

// answer normalizes answer region text and removes the answer prefix.
func (e *Extractor) answer(text string) string {
	return strings.ReplaceAll(e.normalizer.Normalize(text), answerPrefix, "")
}
