package balance

import (
	"embed"
	"os"
	"path/filepath"
)

const fileName = "balance.yaml"

//go:embed balance.yaml
var balanceFS embed.FS

// Bytes returns the raw balance document. A copy on disk next to the binary
// wins over the embedded default so values can be tweaked without a rebuild.
func Bytes() ([]byte, error) {
	if data, err := os.ReadFile(DiskPath()); err == nil {
		return data, nil
	}
	return balanceFS.ReadFile(fileName)
}

// DiskPath is the on-disk override location watched for live reloads.
func DiskPath() string {
	return filepath.Join("balance", fileName)
}
