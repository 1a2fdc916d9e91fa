package bindery

import (
	"github.com/tsawler/bindery/marks"
	"github.com/tsawler/bindery/model"
	"github.com/tsawler/bindery/render"
	"github.com/tsawler/bindery/schema"
)

// imposeOptions holds the configuration of an imposition run.
type imposeOptions struct {
	schema schema.ID
	params schema.Params
	geom   model.SheetGeometry
	marks  marks.Options
	render render.Options
}

// defaultOptions returns the default imposition options: a saddle booklet
// with no margins and no marks.
func defaultOptions() imposeOptions {
	return imposeOptions{
		schema: schema.Saddle,
	}
}

// clone creates a copy of imposeOptions. All fields are value types, so a
// shallow copy is a deep copy.
func (o imposeOptions) clone() imposeOptions {
	return o
}
