package hclload

import "github.com/hashicorp/hcl/v2"

// rootSchema matches the top-level blocks of a manifest file.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "resource", LabelNames: []string{"type", "title"}},
	},
}

// resourceSchema matches the content of a `resource` block.
var resourceSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "tags"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "arguments"},
	},
}
