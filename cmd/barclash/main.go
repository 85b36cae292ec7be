package main

import (
	"barclash/internal/app"
	"barclash/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
