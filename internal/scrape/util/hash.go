package util

import (
	"crypto/md5"
	"encoding/hex"
)

// ContentID derives a short stable id for postings without an upstream
// one: first 12 hex chars of md5("<company>_<title>"). Any title edit
// changes the id, so the posting re-surfaces as new next run.
func ContentID(company, title string) string {
	sum := md5.Sum([]byte(company + "_" + title))
	return hex.EncodeToString(sum[:])[:12]
}
