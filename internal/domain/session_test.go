package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummonSetsHeadStartAndActivates(t *testing.T) {
	t.Parallel()

	session := NewSession()
	err := session.Summon("finish thesis", "procrastination", PersonaGrinder)
	require.NoError(t, err)

	assert.Equal(t, Session{
		Goal:         "finish thesis",
		Insecurity:   "procrastination",
		NemesisType:  PersonaGrinder,
		NemesisScore: 15,
		UserScore:    0,
		Active:       true,
	}, session)
}

func TestSummonValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		goal       string
		insecurity string
		persona    PersonaID
		wantErr    error
	}{
		{"empty goal", "", "procrastination", PersonaGrinder, ErrGoalRequired},
		{"empty insecurity", "finish thesis", "", PersonaGrinder, ErrInsecurityRequired},
		{"empty persona", "finish thesis", "procrastination", "", ErrPersonaRequired},
		{"unknown persona", "finish thesis", "procrastination", "SLACKER", ErrUnknownPersona},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			session := NewSession()
			err := session.Summon(tt.goal, tt.insecurity, tt.persona)
			require.ErrorIs(t, err, tt.wantErr)
			assert.False(t, session.Active)
			assert.Zero(t, session.NemesisScore)
			assert.Zero(t, session.UserScore)
		})
	}
}

func TestSummonValidationDoesNotMutate(t *testing.T) {
	t.Parallel()

	session := NewSession()
	session.NemesisScore = 7
	session.UserScore = 3

	err := session.Summon("", "", "")
	require.Error(t, err)
	assert.Equal(t, 7, session.NemesisScore)
	assert.Equal(t, 3, session.UserScore)
}

func TestLogWorkIncrementsByTenPerCall(t *testing.T) {
	t.Parallel()

	session := NewSession()
	require.NoError(t, session.Summon("ship v1", "doubt", PersonaNatural))

	for i := 1; i <= 5; i++ {
		assert.Equal(t, 10*i, session.LogWork())
	}
	assert.Equal(t, 50, session.UserScore)
}

func TestNemesisTickIncrementsByOne(t *testing.T) {
	t.Parallel()

	session := NewSession()
	require.NoError(t, session.Summon("ship v1", "doubt", PersonaPerfectionist))

	for i := 1; i <= 4; i++ {
		assert.Equal(t, NemesisHeadStart+i, session.NemesisTick())
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	t.Parallel()

	session := NewSession()
	require.NoError(t, session.Summon("ship v1", "doubt", PersonaGrinder))
	session.LogWork()

	session.Reset()
	assert.Equal(t, NewSession(), session)
}

func TestLead(t *testing.T) {
	t.Parallel()

	session := Session{NemesisScore: 18, UserScore: 30}
	assert.Equal(t, -12, session.Lead())
}
