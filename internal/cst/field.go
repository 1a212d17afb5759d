package cst

// Field names the role a child plays inside its parent. FieldNone marks
// structural children without a role (trivia, mostly).
type Field uint8

const (
	FieldNone Field = iota
	FieldStmt
	FieldBody
	FieldIdent
	FieldValue
	FieldOperator
	FieldOperand
	FieldFunction
	FieldArg
	FieldCollection
	FieldIndex
	FieldInner
	FieldField
	FieldCondition
)

var fieldNames = [...]string{
	FieldNone:       "",
	FieldStmt:       "stmt",
	FieldBody:       "body",
	FieldIdent:      "ident",
	FieldValue:      "value",
	FieldOperator:   "operator",
	FieldOperand:    "operand",
	FieldFunction:   "function",
	FieldArg:        "arg",
	FieldCollection: "collection",
	FieldIndex:      "index",
	FieldInner:      "inner",
	FieldField:      "field",
	FieldCondition:  "condition",
}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "Field(?)"
}

// FieldByName resolves a field from its string name, for consumers that
// address fields textually.
func FieldByName(name string) (Field, bool) {
	for f, n := range fieldNames {
		if n != "" && n == name {
			return Field(f), true
		}
	}
	return FieldNone, false
}
