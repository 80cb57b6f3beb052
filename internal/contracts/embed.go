package contracts

import "embed"

//go:embed schemas/content
var schemasFS embed.FS
