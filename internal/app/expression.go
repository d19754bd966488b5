package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/agbru/hexcalc/internal/bigint"
	"github.com/agbru/hexcalc/internal/cli"
	apperrors "github.com/agbru/hexcalc/internal/errors"
	"github.com/agbru/hexcalc/internal/logging"
)

// runExpression evaluates a single engine operation and prints the result.
func (a *Application) runExpression(out io.Writer) int {
	start := time.Now()
	result, err := a.evaluate()
	elapsed := time.Since(start)

	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		var underflow *bigint.UnderflowError
		if errors.As(err, &underflow) {
			return apperrors.ExitErrorUnderflow
		}
		return apperrors.ExitErrorGeneric
	}

	a.Logger.Debug("expression evaluated",
		logging.String("op", a.Config.Operation),
		logging.Int("result_len", result.Len()))

	if a.Config.Quiet {
		cli.DisplayQuietResult(result.Hex(), out)
	} else {
		cli.PresentExpressionResult(a.Config.Operation, result.Hex(), elapsed, a.Config.Verbose, out)
	}
	return apperrors.ExitSuccess
}

// evaluate dispatches the configured operation to the engine. In strict
// mode an underflowing subtraction panics; the panic is recovered here and
// converted to an error so the process can exit with the underflow code.
func (a *Application) evaluate() (result bigint.BigInt, err error) {
	x := bigint.New(a.Config.OperandA)
	y := bigint.New(a.Config.OperandB)

	defer func() {
		if r := recover(); r != nil {
			result = bigint.Empty()
			err = &bigint.UnderflowError{Minuend: x.Hex(), Subtrahend: y.Hex()}
		}
	}()

	switch a.Config.Operation {
	case "add":
		return x.Add(y), nil
	case "sub":
		if a.Config.Strict {
			return x.SubStrict(y), nil
		}
		return x.Sub(y)
	case "mul":
		return x.Mul(y), nil
	case "mod":
		return x.ModBy(y)
	case "xor":
		return x.Xor(y), nil
	case "and":
		return x.And(y), nil
	case "or":
		return x.Or(y), nil
	case "inv":
		return x.Inv(), nil
	case "shl":
		return x.ShiftL(a.Config.ShiftBits), nil
	case "shr":
		return x.ShiftR(a.Config.ShiftBits), nil
	default:
		return bigint.Empty(), apperrors.NewConfigError("unknown operation: %s", a.Config.Operation)
	}
}
