package migrations

import "embed"

// FS 內嵌的 goose SQL 遷移檔
//
//go:embed *.sql
var FS embed.FS
