package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the fallback for unclassified diagnostics.
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002

	// Syntactic
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedBrace      Code = 2002
	SynUnclosedBracket    Code = 2003
	SynUnclosedParen      Code = 2004
	SynTrailingInput      Code = 2005
	SynMixedOperatorChain Code = 2006
	SynNestingTooDeep     Code = 2007
	SynExpectIdentifier   Code = 2008
	SynExpectExpression   Code = 2009

	// I/O and environment
	IOError         Code = 9000
	IOLoadFileError Code = 9001
)

var codeNames = map[Code]string{
	UnknownCode:           "Unknown",
	LexInfo:               "LexInfo",
	LexUnknownChar:        "LexUnknownChar",
	LexUnterminatedString: "LexUnterminatedString",
	SynInfo:               "SynInfo",
	SynUnexpectedToken:    "SynUnexpectedToken",
	SynUnclosedBrace:      "SynUnclosedBrace",
	SynUnclosedBracket:    "SynUnclosedBracket",
	SynUnclosedParen:      "SynUnclosedParen",
	SynTrailingInput:      "SynTrailingInput",
	SynMixedOperatorChain: "SynMixedOperatorChain",
	SynNestingTooDeep:     "SynNestingTooDeep",
	SynExpectIdentifier:   "SynExpectIdentifier",
	SynExpectExpression:   "SynExpectExpression",
	IOError:               "IOError",
	IOLoadFileError:       "IOLoadFileError",
}

// ID returns the stable machine-readable identifier, e.g. "RCL2001".
func (c Code) ID() string {
	return fmt.Sprintf("RCL%04d", uint16(c))
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return c.ID()
}
