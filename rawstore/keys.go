package rawstore

import "fmt"

// Key prefixes for the archive keyspace.
const (
	docPrefix  = "rawdoc"
	datePrefix = "rawdate"
)

// makeDocKey generates the key for one archived document.
// Format: prefix:date:id
func makeDocKey(date, id string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", docPrefix, date, id))
}

// makeDocDateScanKey generates the prefix covering every document of a
// date. Document IDs never contain ':' so the scan cannot leak into a
// neighbouring date.
func makeDocDateScanKey(date string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", docPrefix, date))
}

// makeDateKey generates the marker key recording that a date holds
// archived documents.
func makeDateKey(date string) []byte {
	return []byte(fmt.Sprintf("%s:%s", datePrefix, date))
}

func dateScanPrefix() []byte {
	return []byte(datePrefix + ":")
}
