package openai

import (
	"errors"

	"github.com/adrianliechti/voicegate/pkg/fault"

	"github.com/openai/openai-go/v3"
)

func convertError(err error) error {
	var apierr *openai.Error

	if errors.As(err, &apierr) {
		return fault.Upstream(apierr.Message, err)
	}

	return fault.Upstream(err.Error(), err)
}
