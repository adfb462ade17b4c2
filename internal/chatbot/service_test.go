package chatbot

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaneko/skills-chatbot/internal/knowledge"
	"github.com/mkaneko/skills-chatbot/internal/profile"
	"github.com/mkaneko/skills-chatbot/internal/prompt"
	"github.com/mkaneko/skills-chatbot/internal/search"
)

// fakeClient is a test double for the generation client.
type fakeClient struct {
	mu         sync.Mutex
	calls      int
	lastPrompt string
	response   string
	err        error
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestService(t *testing.T, client *fakeClient) (*Service, *knowledge.Store) {
	t.Helper()

	store := knowledge.NewStore(filepath.Join(t.TempDir(), "kb.json"))
	require.NoError(t, store.Load())

	svc := NewService(Config{
		Store:             store,
		Engine:            search.NewEngine(store),
		Client:            client,
		Profiles:          profile.Defaults(),
		TrainingStepDelay: time.Millisecond,
	})
	return svc, store
}

func seedRecord(t *testing.T, store *knowledge.Store) {
	t.Helper()
	require.NoError(t, store.Upsert(&knowledge.Record{
		Source:    "robotics-report",
		Type:      knowledge.TypeTXT,
		Content:   "I built an autonomous robot with Python and robotics frameworks.",
		Skills:    []string{"python", "robotics"},
		Projects:  []string{"I built an autonomous robot with Python and robotics frameworks"},
		Summary:   "I built an autonomous robot with Python and robotics frameworks.",
		Timestamp: time.Now().UTC(),
	}))
}

func TestRespond_UsesKnowledgeContext(t *testing.T) {
	client := &fakeClient{response: "Here is what I know about robotics."}
	svc, store := newTestService(t, client)
	seedRecord(t, store)

	text, err := svc.Respond(context.Background(), "tell me about robotics", "Python", nil)

	require.NoError(t, err)
	assert.Equal(t, "Here is what I know about robotics.", text)
	assert.Equal(t, 1, client.callCount())
	assert.Contains(t, client.lastPrompt, "From robotics-report:")
	assert.Contains(t, client.lastPrompt, "Additional Skill Information:")
	assert.Contains(t, client.lastPrompt, "User: tell me about robotics")
}

func TestRespond_DeflectsWithoutCallingModel(t *testing.T) {
	client := &fakeClient{response: "should never be used"}
	svc, _ := newTestService(t, client)
	// Empty store and a skill absent from the profiles

	text, err := svc.Respond(context.Background(), "what about blockchain", "Blockchain", nil)

	require.NoError(t, err)
	assert.Contains(t, text, "I don't have specific information about Blockchain")
	assert.Equal(t, 0, client.callCount(), "deflection must not call the model")
}

func TestRespond_KnownProfileWithEmptyKnowledgeStillCallsModel(t *testing.T) {
	client := &fakeClient{response: "Python answer"}
	svc, _ := newTestService(t, client)

	text, err := svc.Respond(context.Background(), "no knowledge hits here", "Python", nil)

	require.NoError(t, err)
	assert.Equal(t, "Python answer", text)
	assert.Equal(t, 1, client.callCount())
}

func TestRespond_ModelFailureReturnsApology(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	svc, store := newTestService(t, client)
	seedRecord(t, store)

	text, err := svc.Respond(context.Background(), "robotics", "Python", nil)

	require.NoError(t, err, "external failures are absorbed, not propagated")
	assert.Equal(t, apologyMessage, text)
}

func TestRespond_ValidatesInputs(t *testing.T) {
	client := &fakeClient{}
	svc, _ := newTestService(t, client)

	_, err := svc.Respond(context.Background(), "", "Python", nil)
	var verr *search.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "message", verr.Field)

	_, err = svc.Respond(context.Background(), "hello", "  ", nil)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "skill", verr.Field)

	assert.Equal(t, 0, client.callCount())
}

func TestRespond_HistoryAppearsInPrompt(t *testing.T) {
	client := &fakeClient{response: "ok"}
	svc, store := newTestService(t, client)
	seedRecord(t, store)

	history := []prompt.Message{
		{Type: prompt.RoleUser, Content: "earlier question"},
		{Type: prompt.RoleBot, Content: "earlier answer"},
	}
	_, err := svc.Respond(context.Background(), "robotics", "Python", history)

	require.NoError(t, err)
	assert.Contains(t, client.lastPrompt, "Previous conversation:")
	assert.Contains(t, client.lastPrompt, "User: earlier question")
	assert.Contains(t, client.lastPrompt, "Assistant: earlier answer")
}

func TestAvailableSkills(t *testing.T) {
	svc, _ := newTestService(t, &fakeClient{})

	skills := svc.AvailableSkills()

	require.Len(t, skills, 3)
	assert.Equal(t, "Python", skills[0].Name)
	assert.Equal(t, profile.LevelAdvanced, skills[0].Level)
	assert.Equal(t, 4, skills[0].Years)
}

func TestRespond_ConcurrentWithTrainingMerge(t *testing.T) {
	client := &fakeClient{response: "ok"}
	svc, store := newTestService(t, client)
	seedRecord(t, store)

	// Chat continuously while training jobs rewrite the Python profile in
	// place. The responder must only ever see a consistent profile copy.
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			_, err := svc.Respond(context.Background(), "robotics", "Python", nil)
			assert.NoError(t, err)
		}
	}()

	for i := 0; i < 10; i++ {
		_, err := svc.StartTraining([]profile.SkillProfile{
			{Name: "Python", Level: profile.LevelIntermediate, Years: i + 1,
				Experience: "updated during run"},
		})
		if err != nil {
			// A previous job is still finishing; try again shortly.
			time.Sleep(time.Millisecond)
			continue
		}
		waitForTrainingDone(t, svc)
	}

	close(stop)
	wg.Wait()
}
