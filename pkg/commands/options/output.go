package options

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/party/pkg/app"
	"tableflip.dev/party/pkg/plan"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.PersistentFlags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// HandleError prints err as a JSON object when JSON output is on and
// swallows it; otherwise err is returned unchanged.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		b, err := json.Marshal(errorResponse{Error: err.Error(), Kind: errorKind(err)})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, app.ErrPlanNotFound):
		return "plan_not_found"
	case errors.Is(err, app.ErrPlanExists):
		return "plan_exists"
	case errors.Is(err, app.ErrUnknownKey):
		return "unknown_key"
	case errors.Is(err, app.ErrSuperseded):
		return "superseded"
	case errors.Is(err, plan.ErrNoName):
		return "invalid_name"
	default:
		return ""
	}
}
