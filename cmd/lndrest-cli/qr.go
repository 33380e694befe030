package main

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const pngDataURIPrefix = "data:image/png;base64,"

func dataURIBytes(uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, pngDataURIPrefix) {
		return nil, fmt.Errorf("not a PNG data URI")
	}
	return base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, pngDataURIPrefix))
}
