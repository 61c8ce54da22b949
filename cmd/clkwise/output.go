//nolint:wrapcheck
package main

import (
	"os"

	"github.com/farcloser/primordium/format"

	"github.com/skirrithan/Clkwise/internal/output"
	"github.com/skirrithan/Clkwise/internal/types"
)

func outputSimplified(reportPath string, simplified *types.SimplifiedReport, top int, formatName string) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	meta := output.SimplifiedToMap(simplified)

	// Display cap only; the written JSON keeps every issue.
	if issues, ok := meta["issues"].([]any); ok && top > 0 && len(issues) > top {
		meta["issues"] = issues[:top]
	}

	data := &format.Data{
		Object: reportPath,
		Meta:   meta,
	}

	return formatter.PrintAll([]*format.Data{data}, os.Stdout)
}
