package main

import "github.com/eatu-cf/odata-query-services/cmd"

func main() {
	cmd.Execute()
}
