package main

import (
	"embed"
	"io/fs"

	"go-hangar/app/cmd"
)

//go:embed web
var web embed.FS

func main() {
	root, err := fs.Sub(web, "web")
	if err != nil {
		panic(err)
	}
	cmd.Execute(root)
}
