package probset

// Behavior identifies the extraction rule applied to a page.
// The set of behaviors is closed; each one encodes the layout of one
// question type.
type Behavior string

// Behavior constants.
const (
	// BehaviorDefault emits one text/answer record per problem block.
	BehaviorDefault Behavior = "default"

	// BehaviorYesNo emits one labelled statement per numbered premise.
	BehaviorYesNo Behavior = "yesno"

	// BehaviorTable pairs task bodies with the last cell of result rows.
	BehaviorTable Behavior = "table"

	// BehaviorBasis emits labelled sentence/basis pairs.
	BehaviorBasis Behavior = "basis"

	// BehaviorPhraseConn emits phrase/connection/answer triples.
	BehaviorPhraseConn Behavior = "phrase_conn"
)

// Behaviors returns every known behavior.
func Behaviors() []Behavior {
	return []Behavior{
		BehaviorDefault,
		BehaviorYesNo,
		BehaviorTable,
		BehaviorBasis,
		BehaviorPhraseConn,
	}
}

// Validate returns an error if b is not a known behavior.
func (b Behavior) Validate() error {
	switch b {
	case BehaviorDefault, BehaviorYesNo, BehaviorTable, BehaviorBasis, BehaviorPhraseConn:
		return nil
	}
	return Errorf(EINVALID, "unknown behavior %q", string(b))
}
