/*
Copyright © 2026 Paulo Suderio
*/
package main

import "github.com/suderio/luckydice/cmd"

func main() {
	cmd.Execute()
}
