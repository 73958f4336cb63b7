package dao_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agora_dao/dao"
)

func TestParamsFromEnvOverrides(t *testing.T) {
	t.Setenv("DAO_QUORUM_PERCENT", "35")
	t.Setenv("DAO_VOTING_PERIOD", "48h")
	t.Setenv("DAO_WELCOME_BALANCE", "250")

	p, err := dao.ParamsFromEnv()
	require.NoError(t, err)
	assert.Equal(t, int64(35), p.QuorumPercent)
	assert.Equal(t, 48*time.Hour, p.VotingPeriod)
	assert.Equal(t, dao.Amount(250), p.WelcomeBalance)
	// untouched values keep their fallbacks
	assert.Equal(t, dao.Amount(dao.FallbackGovernanceThreshold), p.GovernanceThreshold)
}

func TestParamsValidate(t *testing.T) {
	p := dao.DefaultParams()
	require.NoError(t, p.Validate())

	p.QuorumPercent = 101
	require.Error(t, p.Validate())

	p = dao.DefaultParams()
	p.EmergencyDivisor = 0
	require.Error(t, p.Validate())

	p = dao.DefaultParams()
	p.VotingPeriod = 0
	require.Error(t, p.Validate())
}

func TestParamsFromEnvRejectsInvalid(t *testing.T) {
	t.Setenv("DAO_QUORUM_PERCENT", "140")
	_, err := dao.ParamsFromEnv()
	require.Error(t, err)
}
