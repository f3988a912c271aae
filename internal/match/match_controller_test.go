package match

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchday-app/matchday/pkg/responses"
)

func TestGetTeamMatchesClampsPaging(t *testing.T) {
	gin.SetMode(gin.TestMode)
	f := newFixture(t)
	c := f.acceptedChallenge(t)

	_, err := f.matches.RecordResult(f.ownerA.ID, RecordResultInput{
		ChallengeID: c.ID,
		HomeScore:   2,
		AwayScore:   0,
		MatchDate:   time.Now(),
	})
	require.NoError(t, err)

	router := gin.New()
	router.GET("/matches/team/:team_id", NewMatchController(f.matches).GetTeamMatches)

	// Out-of-range paging values fall back to the defaults instead of
	// producing an empty or unbounded page.
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/matches/team/%d?page=0&limit=-1", f.teamA.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp responses.PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Pagination.Page)
	assert.Equal(t, 20, resp.Pagination.Limit)
	assert.Equal(t, int64(1), resp.Pagination.Total)
}
