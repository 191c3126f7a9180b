package main

import (
	"github.com/mj1618/dashpanel/cmd"
	_ "github.com/mj1618/dashpanel/internal/host/rlhost"
)

func main() {
	cmd.Execute()
}
