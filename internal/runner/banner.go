package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = `
   __             __  __ _      __ 
  / /__  ___  __/ /_/ /(_)____/ /_
 / / _ \/ _ \/_  __/ // / ___/ __/
/ /  __/  __/ / /_/ // (__  ) /_  
\_\___/\___/  \__/_//_/____/\__/  
`

var version = "v0.1.0"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tpersonal password wordlist generator\n\n")
}

// GetUpdateCallback returns a callback function that updates leetlist
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("leetlist", version)()
	}
}
