package plan

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/taskplanner/internal/errors"
)

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name   string
		req    Request
		code   errors.ErrorCode
		fields int
	}{
		{"valid", Request{Goal: "Learn Go"}, "", 0},
		{"valid with timeline", Request{Goal: "Learn Go", TimelineWeeks: 2}, "", 0},
		{"blank goal", Request{Goal: "   "}, errors.ErrCodeGoalEmpty, 1},
		{"negative weeks", Request{Goal: "Learn Go", TimelineWeeks: -1}, errors.ErrCodeTimelineInvalid, 1},
		{"both", Request{TimelineWeeks: -1}, errors.ErrCodeGoalEmpty, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}

			assert.Equal(t, tt.code, errors.Code(err))
			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Len(t, fieldErrs, tt.fields)
		})
	}
}
