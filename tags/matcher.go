package tags

import (
	"bytes"
	"github.com/viant/parsly"
	"strings"
)

func matchPair(cursor *parsly.Cursor) (string, string) {
	cursor.MatchOne(whitespaceMatcher)
	key := ""
	value := ""
	rest := cursor.Input[cursor.Pos:]
	eqIndex := bytes.IndexByte(rest, '=')
	comaIndex := bytes.IndexByte(rest, ',')
	if eqIndex != -1 && (comaIndex == -1 || eqIndex < comaIndex) {
		match := cursor.MatchOne(eqTerminatorMatcher)
		key = match.Text(cursor)
		key = key[:len(key)-1]
		value = matchValue(cursor)
		return strings.TrimSpace(key), value
	}
	return strings.TrimSpace(matchValue(cursor)), ""
}

func matchValue(cursor *parsly.Cursor) string {
	value := ""
	match := cursor.MatchAny(scopeBlockMatcher, quotedMatcher, comaTerminatorMatcher)
	switch match.Code {
	case scopeBlockToken, quotedToken:
		value = match.Text(cursor)
		value = value[1 : len(value)-1]
		cursor.MatchAfterOptional(whitespaceMatcher, comaTerminatorMatcher)
	case comaTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1] //exclude ,
	default:
		if cursor.Pos < len(cursor.Input) {
			value = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
	}
	return value
}
