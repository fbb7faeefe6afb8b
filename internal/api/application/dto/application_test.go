package applicationdto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/global"
)

func TestCreateApplicationInput_Validation(t *testing.T) {
	valid := CreateApplicationInput{
		Email:        "alice@example.com",
		PolicyID:     "64b64d9f2a1b3c4d5e6f7a8b",
		CustomerName: "Alice",
	}
	assert.NoError(t, global.Validate.Struct(valid))

	t.Run("missing email", func(t *testing.T) {
		input := valid
		input.Email = ""
		assert.Error(t, global.Validate.Struct(input))
	})

	t.Run("malformed email", func(t *testing.T) {
		input := valid
		input.Email = "not-an-email"
		assert.Error(t, global.Validate.Struct(input))
	})

	t.Run("short policy id", func(t *testing.T) {
		input := valid
		input.PolicyID = "abc123"
		assert.Error(t, global.Validate.Struct(input))
	})

	t.Run("non-hex policy id", func(t *testing.T) {
		input := valid
		input.PolicyID = "zzzzzzzzzzzzzzzzzzzzzzzz"
		assert.Error(t, global.Validate.Struct(input))
	})
}

func TestUpdateStatusInput_Validation(t *testing.T) {
	assert.NoError(t, global.Validate.Struct(UpdateStatusInput{Status: "approved"}))
	assert.NoError(t, global.Validate.Struct(UpdateStatusInput{Status: "rejected"}))
	assert.Error(t, global.Validate.Struct(UpdateStatusInput{Status: "paid"}))
	assert.Error(t, global.Validate.Struct(UpdateStatusInput{Status: ""}))
}

func TestAgentStatusInput_Validation(t *testing.T) {
	assert.NoError(t, global.Validate.Struct(AgentStatusInput{AgentStatus: "approved"}))
	assert.Error(t, global.Validate.Struct(AgentStatusInput{AgentStatus: "pending"}))
}

func TestClaimInput_Validation(t *testing.T) {
	assert.NoError(t, global.Validate.Struct(ClaimInput{ClaimReason: "hospitalization"}))
	assert.NoError(t, global.Validate.Struct(ClaimInput{
		ClaimReason:   "hospitalization",
		ClaimDocument: "https://cdn.example.com/doc.pdf",
	}))
	assert.Error(t, global.Validate.Struct(ClaimInput{}))
	assert.Error(t, global.Validate.Struct(ClaimInput{
		ClaimReason:   "hospitalization",
		ClaimDocument: "not a url",
	}))
}
