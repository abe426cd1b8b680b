////////////////////////////////////////////////////////////////////////////////
// Non-Fungible Code: limited edition code projects minted for wei
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"os"

	"nfc_contract/cmd"
)

var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
