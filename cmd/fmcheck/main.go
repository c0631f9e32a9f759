// cmd/fmcheck/main.go
package main

import (
	"fmcheck/internal/app"
	"fmcheck/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
