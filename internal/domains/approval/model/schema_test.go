package model_test

import (
	"fmt"
	"os"
	"regexp"
	"testing"

	"lodge/internal/domains/approval/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const approvalsMigration = "../../../../migrations/postgres/000004_create_pricing_tables.up.sql"

func TestSchema_ChangePercentageKeepsScale(t *testing.T) {
	ddl, err := os.ReadFile(approvalsMigration)
	require.NoError(t, err)

	column := regexp.MustCompile(fmt.Sprintf(`%s\s+NUMERIC\(\d+,\s*%d\)`, model.FieldChangePercentage, model.ChangeScale))

	assert.Regexp(t, column, string(ddl), "stored change must not round away what the threshold compared")
}

func TestSchema_OneApprovalPerEvent(t *testing.T) {
	ddl, err := os.ReadFile(approvalsMigration)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`UNIQUE INDEX[^;]+ON `+model.TableName+` \(`+model.FieldEventID+`\)`), string(ddl))
}
