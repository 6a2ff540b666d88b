package builtin

import "strings"

// splitArgs separates flag tokens (leading "-", combined short forms like
// "-la" accepted per spec §6) from positional operands. It returns the set
// of individual flag letters seen and the remaining non-flag args, in
// order.
func splitArgs(args []string) (flags map[rune]bool, operands []string) {
	flags = make(map[rune]bool)
	for _, a := range args {
		if len(a) >= 2 && a[0] == '-' && a != "-" && a != "--" {
			for _, r := range a[1:] {
				flags[r] = true
			}
			continue
		}
		operands = append(operands, a)
	}
	return flags, operands
}

func hasFlag(args []string, name string) bool {
	for _, a := range args {
		if a == name {
			return true
		}
	}
	return false
}

func trimFlagArgs(args []string, names ...string) []string {
	var out []string
	for _, a := range args {
		skip := false
		for _, n := range names {
			if a == n {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, a)
		}
	}
	return out
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
