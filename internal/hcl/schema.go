package hcl

import "github.com/hashicorp/hcl/v2"

// rootSchema lists the top-level blocks a manifest may contain.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "program", LabelNames: []string{"name"}},
		{Type: "interpreter"},
		{Type: "translator"},
	},
}

// programBlock is the body of a `program "<name>"` block.
type programBlock struct {
	Language string `hcl:"language"`
}

// interpreterBlock is the body of an `interpreter` block. Exactly one of
// Language and Languages must be set; Languages declares one interpreter
// per entry, all written in Base.
type interpreterBlock struct {
	Base      string   `hcl:"base"`
	Language  *string  `hcl:"language,optional"`
	Languages []string `hcl:"languages,optional"`
}

// translatorBlock is the body of a `translator` block.
type translatorBlock struct {
	Base   string `hcl:"base"`
	Source string `hcl:"source"`
	Target string `hcl:"target"`
}
