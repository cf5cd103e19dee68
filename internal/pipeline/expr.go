package pipeline

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expression helpers shared by the read-model pipelines. These build the
// operator documents used inside AddFields/Project stages.

// Size counts the elements of an array field ($size).
func Size(field string) bson.D {
	return bson.D{{Key: "$size", Value: field}}
}

// Sum totals a field across grouped documents ($sum).
func Sum(expr any) bson.D {
	return bson.D{{Key: "$sum", Value: expr}}
}

// Push collects values across grouped documents ($push).
func Push(expr any) bson.D {
	return bson.D{{Key: "$push", Value: expr}}
}

// First picks the first element of an array field ($first).
func First(field string) bson.D {
	return bson.D{{Key: "$first", Value: field}}
}

// IfNull substitutes fallback when the field resolves to null.
func IfNull(field string, fallback any) bson.D {
	return bson.D{{Key: "$ifNull", Value: bson.A{field, fallback}}}
}

// MemberOf evaluates to true iff id appears in arrayField. Viewer-relative
// flags (isLiked, isSubscribed) are built from this; id is always a
// structured ObjectID so the comparison never degrades to string equality.
func MemberOf(id primitive.ObjectID, arrayField string) bson.D {
	return bson.D{{Key: "$cond", Value: bson.D{
		{Key: "if", Value: bson.D{{Key: "$in", Value: bson.A{id, arrayField}}}},
		{Key: "then", Value: true},
		{Key: "else", Value: false},
	}}}
}

// RegexContains matches documents whose field contains substr as a literal
// substring, case-insensitively. The value is quoted so caller-supplied
// metacharacters never act as regex syntax.
func RegexContains(field, substr string) bson.E {
	return bson.E{Key: field, Value: bson.D{
		{Key: "$regex", Value: regexp.QuoteMeta(substr)},
		{Key: "$options", Value: "i"},
	}}
}

// Or combines filter clauses ($or).
func Or(clauses ...bson.E) bson.D {
	arr := make(bson.A, 0, len(clauses))
	for _, c := range clauses {
		arr = append(arr, bson.D{c})
	}
	return bson.D{{Key: "$or", Value: arr}}
}
