package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnema/cc-quota/internal/domain"
)

// parseHideList turns a comma-separated --hide value into a HideSet.
// Unknown tokens are reported on warn and otherwise ignored.
func parseHideList(raw string, warn io.Writer) domain.HideSet {
	set := domain.NewHideSet()
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		key, ok := domain.ParseHideKey(token)
		if !ok {
			fmt.Fprintf(warn, "Warning: Unknown hide option %q ignored. Valid options: %s\n", token, validHideOptions())
			continue
		}
		set[key] = struct{}{}
	}

	return set
}

func validHideOptions() string {
	names := make([]string, 0, len(domain.HideKeys))
	for _, key := range domain.HideKeys {
		names = append(names, string(key))
	}
	return strings.Join(names, ", ")
}
