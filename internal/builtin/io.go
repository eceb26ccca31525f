package builtin

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/hipparcos/dialecte/internal/lerr"
	"github.com/hipparcos/dialecte/internal/value"
)

var stdin = bufio.NewReader(os.Stdin)

// registerIO installs print/println/read/error. print/println write
// directly to stdout (mirroring the teacher's main.go, which prints via
// plain fmt calls with no output-abstraction layer); `error` raises
// rather than returning an Error-kind value, since a user-level error
// anywhere halts evaluation per §7.
func registerIO(env *value.Environment) {
	registerFunc(env, "print", 0, value.Unbounded, nil,
		func(_ *value.Environment, args []*value.Value) (*value.Value, error) {
			fmt.Print(joinValues(args))

			return value.NewNil(), nil
		})

	registerFunc(env, "println", 0, value.Unbounded, nil,
		func(_ *value.Environment, args []*value.Value) (*value.Value, error) {
			fmt.Println(joinValues(args))

			return value.NewNil(), nil
		})

	registerFunc(env, "read", 0, 0, nil,
		func(_ *value.Environment, _ []*value.Value) (*value.Value, error) {
			line, err := stdin.ReadString('\n')
			if err != nil && line == "" {
				return nil, lerr.New(lerr.Eval, "read: %s", err)
			}

			return value.NewString(strings.TrimRight(line, "\r\n")), nil
		})

	registerFunc(env, "error", 1, 1, []value.Guard{arg(1, value.KindIs(value.String))},
		func(_ *value.Environment, args []*value.Value) (*value.Value, error) {
			return nil, lerr.New(lerr.Eval, "%s", args[0].Str())
		})
}

func joinValues(args []*value.Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}

	return strings.Join(parts, " ")
}
