package chatbot

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/mkaneko/skills-chatbot/internal/profile"
)

// TrainingState is the lifecycle state of the background training job.
type TrainingState string

// Training job states
const (
	TrainingIdle      TrainingState = "idle"
	TrainingRunning   TrainingState = "running"
	TrainingCompleted TrainingState = "completed"
	TrainingFailed    TrainingState = "failed"
)

// TrainingStatus is the observable state of the training job.
type TrainingStatus struct {
	State    TrainingState `json:"state"`
	Progress float64       `json:"progress"`
	JobID    string        `json:"job_id,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// trainingSteps is the fixed simulated step sequence.
var trainingSteps = []string{
	"Preparing training data...",
	"Validating data format...",
	"Fine-tuning model...",
	"Evaluating performance...",
	"Saving model...",
}

// TrainingStatusSnapshot returns the current training status.
func (s *Service) TrainingStatusSnapshot() TrainingStatus {
	s.trainingMu.Lock()
	defer s.trainingMu.Unlock()
	return s.training
}

// StartTraining launches the background job that folds the submitted skill
// data into the configured profiles. A second start while one is running
// fails fast with a *ConflictError. Returns the job ID.
func (s *Service) StartTraining(skills []profile.SkillProfile) (string, error) {
	s.trainingMu.Lock()
	if s.training.State == TrainingRunning {
		jobID := s.training.JobID
		s.trainingMu.Unlock()
		return "", &ConflictError{JobID: jobID}
	}

	jobID := "training_" + uuid.New().String()
	s.training = TrainingStatus{State: TrainingRunning, Progress: 0, JobID: jobID}
	s.trainingMu.Unlock()

	go s.runTraining(jobID, skills)
	return jobID, nil
}

// runTraining walks the simulated step sequence, then merges and persists the
// new skill data. Runs as the job's single background task.
func (s *Service) runTraining(jobID string, skills []profile.SkillProfile) {
	log.Printf("starting training job %s", jobID)

	for i, step := range trainingSteps {
		s.setTrainingProgress(float64(i) / float64(len(trainingSteps)) * 100)
		log.Printf("[%s] %s", jobID, step)
		time.Sleep(s.stepDelay)
	}

	if err := s.applyTrainingData(skills); err != nil {
		log.Printf("training job %s failed: %v", jobID, err)
		s.finishTraining(TrainingStatus{State: TrainingFailed, Progress: 0, JobID: jobID, Error: err.Error()})
		return
	}

	s.finishTraining(TrainingStatus{State: TrainingCompleted, Progress: 100, JobID: jobID})
	log.Printf("training job %s completed", jobID)
}

// applyTrainingData merges incoming profiles and persists the result.
func (s *Service) applyTrainingData(skills []profile.SkillProfile) error {
	s.profilesMu.Lock()
	defer s.profilesMu.Unlock()

	s.profiles.Merge(skills)
	if s.profilesPath == "" {
		return nil
	}
	return s.profiles.Save(s.profilesPath)
}

func (s *Service) setTrainingProgress(progress float64) {
	s.trainingMu.Lock()
	s.training.Progress = progress
	s.trainingMu.Unlock()
}

func (s *Service) finishTraining(status TrainingStatus) {
	s.trainingMu.Lock()
	s.training = status
	s.trainingMu.Unlock()
}
