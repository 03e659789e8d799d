// compileinfoprint is imported by the snpscan binaries for the side effect of
// printing their build provenance to os.Stderr before any output is written.
package compileinfoprint

import "github.com/carbocation/snpscan/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
