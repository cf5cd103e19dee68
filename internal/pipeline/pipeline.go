// Package pipeline models MongoDB aggregation pipelines as a typed sequence
// of stage values instead of free-form documents. Read-model queries compose
// stages in Go; Build produces the driver representation at the call site.
package pipeline

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Stage is a single aggregation pipeline stage.
type Stage interface {
	// Document returns the driver form of the stage.
	Document() bson.D
}

// Pipeline is an ordered sequence of stages.
type Pipeline []Stage

// Build compiles the pipeline into the driver representation.
func (p Pipeline) Build() mongo.Pipeline {
	out := make(mongo.Pipeline, 0, len(p))
	for _, s := range p {
		out = append(out, s.Document())
	}
	return out
}

// Match filters documents ($match).
type Match struct {
	Filter bson.D
}

func (m Match) Document() bson.D {
	return bson.D{{Key: "$match", Value: m.Filter}}
}

// Lookup joins another collection ($lookup). A non-empty Pipeline runs
// against the joined collection before the As array is materialized.
type Lookup struct {
	From         string
	LocalField   string
	ForeignField string
	As           string
	Pipeline     Pipeline
}

func (l Lookup) Document() bson.D {
	spec := bson.D{
		{Key: "from", Value: l.From},
		{Key: "localField", Value: l.LocalField},
		{Key: "foreignField", Value: l.ForeignField},
		{Key: "as", Value: l.As},
	}
	if len(l.Pipeline) > 0 {
		spec = append(spec, bson.E{Key: "pipeline", Value: l.Pipeline.Build()})
	}
	return bson.D{{Key: "$lookup", Value: spec}}
}

// AddFields adds computed fields ($addFields).
type AddFields struct {
	Fields bson.D
}

func (a AddFields) Document() bson.D {
	return bson.D{{Key: "$addFields", Value: a.Fields}}
}

// Project reshapes documents ($project).
type Project struct {
	Fields bson.D
}

func (p Project) Document() bson.D {
	return bson.D{{Key: "$project", Value: p.Fields}}
}

// Sort orders documents ($sort).
type Sort struct {
	Keys bson.D
}

func (s Sort) Document() bson.D {
	return bson.D{{Key: "$sort", Value: s.Keys}}
}

// Skip discards the first N documents ($skip).
type Skip int64

func (s Skip) Document() bson.D {
	return bson.D{{Key: "$skip", Value: int64(s)}}
}

// Limit caps the result to N documents ($limit).
type Limit int64

func (l Limit) Document() bson.D {
	return bson.D{{Key: "$limit", Value: int64(l)}}
}

// Unwind deconstructs an array field ($unwind).
type Unwind struct {
	Path string
}

func (u Unwind) Document() bson.D {
	return bson.D{{Key: "$unwind", Value: u.Path}}
}

// Group accumulates documents ($group). ID of nil groups the whole input
// into a single document.
type Group struct {
	ID     any
	Fields bson.D
}

func (g Group) Document() bson.D {
	spec := bson.D{{Key: "_id", Value: g.ID}}
	spec = append(spec, g.Fields...)
	return bson.D{{Key: "$group", Value: spec}}
}
