package http_test

import (
	"context"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/recognition-api/internal/application/auth"
	"github.com/tu-usuario/recognition-api/internal/application/dto"
	"github.com/tu-usuario/recognition-api/internal/application/recognition"
	"github.com/tu-usuario/recognition-api/internal/domain/entity"
	"github.com/tu-usuario/recognition-api/internal/infrastructure/memory"
	apphttp "github.com/tu-usuario/recognition-api/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/recognition-api/pkg/jwt"
)

func TestZZDebugHTTP(t *testing.T) {
	users := memory.NewUserRepository()
	cycles := memory.NewCycleRepository()
	nominations := memory.NewNominationRepository()
	votes := memory.NewVoteRepository()
	results := recognition.NewResultsUseCase(users, cycles, nominations, votes)
	nomUC := recognition.NewNominationUseCase(cycles, users, nominations)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		t.Logf("matched route: %s %s -> handlers=%v", c.Method(), c.Route().Path, len(c.Route().Handlers))
		return err
	})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		UserUC:       recognition.NewUserUseCase(users),
		LifecycleUC:  recognition.NewLifecycleUseCase(cycles, results),
		NominationUC: nomUC,
		VoteUC:       recognition.NewVoteUseCase(cycles, users, nominations, votes),
		ResultsUC:    results,
		JWTSecret:    testJWTSecret,
	})

	now := time.Now()
	mk := func(name string) *entity.User {
		u := &entity.User{ID: uuid.New().String(), Name: name, Email: name + "@x.com",
			PasswordHash: "x", Role: entity.RoleEmployee, Department: "E",
			Status: entity.UserStatusActive, CreatedAt: now, UpdatedAt: now}
		require.NoError(t, users.Create(u))
		return u
	}
	mk("alice")
	bob := mk("bob")

	tok := func(role string) string {
		s, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
		require.NoError(t, err)
		return "Bearer " + s
	}
	adminToken := tok(entity.RoleAdmin)
	aliceToken := tok(entity.RoleEmployee)

	do := func(method, path, auth string, payload any) *http.Response {
		var rd io.Reader
		if payload != nil {
			b, err := json.Marshal(payload)
			require.NoError(t, err)
			rd = bytes.NewReader(b)
		}
		req := httptest.NewRequest(method, path, rd)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", auth)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	resp := do(http.MethodPost, "/api/cycles/", adminToken, dto.CreateCycleRequest{
		Month: int(now.Month()) - 1, Year: now.Year()})
	b, _ := io.ReadAll(resp.Body)
	t.Logf("create cycle: %d %s", resp.StatusCode, b)
	var cycle dto.CycleResponse
	require.NoError(t, json.Unmarshal(b, &cycle))

	resp = do(http.MethodPatch, "/api/cycles/"+cycle.ID+"/status", adminToken, map[string]string{"status": "VOTING"})
	b, _ = io.ReadAll(resp.Body)
	t.Logf("advance: %d %s", resp.StatusCode, b)

	resp = do(http.MethodPost, "/api/nominations/", aliceToken, dto.SubmitNominationRequest{
		CycleID: cycle.ID, NomineeID: bob.ID, Reason: "gran trabajo"})
	b, _ = io.ReadAll(resp.Body)
	t.Logf("nominate: %d %s", resp.StatusCode, b)

	_, derr := nomUC.Submit(testUserID, dto.SubmitNominationRequest{
		CycleID: cycle.ID, NomineeID: bob.ID, Reason: "gran trabajo"})
	t.Logf("direct same-uc submit err = %v", derr)
	got, gerr := cycles.GetByID(cycle.ID)
	t.Logf("cycles.GetByID(%q) = %+v, err=%v", cycle.ID, got, gerr)
	all, _ := cycles.List()
	for _, c := range all {
		t.Logf("repo contains: id=%q status=%q", c.ID, c.Status)
	}
}

func TestZZDebugSubmitWithTestUserID(t *testing.T) {
	users := memory.NewUserRepository()
	cycles := memory.NewCycleRepository()
	nominations := memory.NewNominationRepository()
	votes := memory.NewVoteRepository()
	results := recognition.NewResultsUseCase(users, cycles, nominations, votes)
	lifecycle := recognition.NewLifecycleUseCase(cycles, results)
	nomUC := recognition.NewNominationUseCase(cycles, users, nominations)

	now := time.Now()
	bob := &entity.User{ID: uuid.New().String(), Name: "bob", Email: "b@x.com",
		PasswordHash: "x", Role: entity.RoleEmployee, Department: "E",
		Status: entity.UserStatusActive, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, users.Create(bob))

	cyc, err := lifecycle.CreateCycle(contextBG(), dto.CreateCycleRequest{Month: int(now.Month()) - 1, Year: now.Year()})
	require.NoError(t, err)
	_, err = lifecycle.AdvanceStatus(cyc.ID, entity.CycleStatusVoting, false)
	require.NoError(t, err)

	_, err = nomUC.Submit(testUserID, dto.SubmitNominationRequest{CycleID: cyc.ID, NomineeID: bob.ID, Reason: "x"})
	t.Logf("submit with testUserID err = %v", err)
}

func contextBG() context.Context { return context.Background() }

func TestZZDebugRoutes(t *testing.T) {
	users := memory.NewUserRepository()
	cycles := memory.NewCycleRepository()
	nominations := memory.NewNominationRepository()
	votes := memory.NewVoteRepository()
	results := recognition.NewResultsUseCase(users, cycles, nominations, votes)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		UserUC:       recognition.NewUserUseCase(users),
		LifecycleUC:  recognition.NewLifecycleUseCase(cycles, results),
		NominationUC: recognition.NewNominationUseCase(cycles, users, nominations),
		VoteUC:       recognition.NewVoteUseCase(cycles, users, nominations, votes),
		ResultsUC:    results,
		JWTSecret:    testJWTSecret,
	})
	for _, r := range app.GetRoutes(true) {
		t.Logf("%-7s %s", r.Method, r.Path)
	}
}
