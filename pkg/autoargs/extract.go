package autoargs

import (
	"strings"

	"github.com/arthur-debert/argspec/pkg/triggers"
)

// Extraction is the result of Extract
type Extraction struct {
	Args   string // argument spec string, "" when absent
	Rets   string // return value spec string, "" when absent
	Status int    // number of non-empty results (0, 1 or 2)
}

// Extract pulls the argument and return value actions out of a trigger
// string and merges them with previously accumulated spec strings.
//
// For each "name@actions" record of trigger, tokens starting with "arg" or
// "fparg" (any case) are kept as written and emitted as "name@tok,tok";
// a token starting with "retval" emits "name@retval". Other actions are
// dropped. Records without '@' are ignored. Newly extracted records come
// first, followed by existingArgs and existingRets.
func Extract(existingArgs, existingRets, trigger string) Extraction {
	var argRecords, retRecords []string

	for _, record := range strings.Split(trigger, ";") {
		name, actions, ok := strings.Cut(record, "@")
		if !ok {
			continue
		}

		var args []string
		retval := false

		for _, token := range strings.Split(actions, ",") {
			if triggers.IsArgumentToken(token) {
				args = append(args, token)
			}
			if triggers.IsRetvalToken(token) {
				retval = true
			}
		}

		if len(args) > 0 {
			argRecords = append(argRecords, name+"@"+strings.Join(args, ","))
		}
		if retval {
			retRecords = append(retRecords, name+"@retval")
		}
	}

	result := Extraction{
		Args: JoinSpec(strings.Join(argRecords, ";"), existingArgs),
		Rets: JoinSpec(strings.Join(retRecords, ";"), existingRets),
	}
	if result.Args != "" {
		result.Status++
	}
	if result.Rets != "" {
		result.Status++
	}
	return result
}

// JoinSpec joins two spec strings with ';', skipping empty ones
func JoinSpec(first, second string) string {
	switch {
	case first == "":
		return second
	case second == "":
		return first
	default:
		return first + ";" + second
	}
}
