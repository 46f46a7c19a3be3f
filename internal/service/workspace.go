package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/futureday25/viberlab/internal/domain"
)

// Slot names under which workspace state is persisted.
const (
	slotChat    = "chat"
	slotDraft   = "draft"
	slotPreview = "preview"
	slotConfig  = "config"
)

// SlotStore persists named text slots per workspace. Get reports false when
// the slot has never been written.
type SlotStore interface {
	Get(ctx context.Context, workspaceID, name string) (string, bool, error)
	Set(ctx context.Context, workspaceID, name, value string) error
}

// WorkspaceDefaults is the compiled-in state of a fresh workspace and the
// fallback for corrupt slots.
type WorkspaceDefaults struct {
	SystemPrompt string
	StarterCode  string
	Completion   domain.CompletionConfig
}

// WorkspaceState is everything one conversation owns: messages, the two
// code buffers, and the completion config.
type WorkspaceState struct {
	Messages []domain.ChatMessage    `json:"messages"`
	Draft    string                  `json:"draft"`
	Preview  string                  `json:"preview"`
	Config   domain.CompletionConfig `json:"config"`
}

// TurnResult is the outcome of one successful turn.
type TurnResult struct {
	Reply    string
	Code     string // extracted runnable code, "" when the reply had none
	Messages []domain.ChatMessage
}

// RunResult is the outcome of committing the draft to the preview.
type RunResult struct {
	Preview string
	Title   string
}

// WorkspaceService orchestrates turns and owns the per-workspace in-flight
// guard: a second send must not race the extraction of the first.
type WorkspaceService struct {
	store       SlotStore
	completions *CompletionService
	defaults    WorkspaceDefaults

	mu     sync.Mutex
	active map[string]bool
}

func NewWorkspaceService(store SlotStore, completions *CompletionService, defaults WorkspaceDefaults) *WorkspaceService {
	return &WorkspaceService{
		store:       store,
		completions: completions,
		defaults:    defaults,
		active:      make(map[string]bool),
	}
}

func (s *WorkspaceService) defaultMessages() []domain.ChatMessage {
	return []domain.ChatMessage{domain.NewChatMessage(domain.RoleSystem, s.defaults.SystemPrompt)}
}

// tryAcquire marks the workspace busy, failing when it already is.
func (s *WorkspaceService) tryAcquire(workspaceID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active[workspaceID] {
		return false
	}
	s.active[workspaceID] = true
	return true
}

func (s *WorkspaceService) release(workspaceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, workspaceID)
}

// Busy reports whether a completion request is in flight for the workspace.
func (s *WorkspaceService) Busy(workspaceID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active[workspaceID]
}

// State loads the full workspace state. Missing or unparseable slots fall
// back to the compiled-in defaults instead of failing.
func (s *WorkspaceService) State(ctx context.Context, workspaceID string) (*WorkspaceState, error) {
	messages, err := s.loadMessages(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	draft, err := s.loadText(ctx, workspaceID, slotDraft, s.defaults.StarterCode)
	if err != nil {
		return nil, err
	}
	preview, err := s.loadText(ctx, workspaceID, slotPreview, s.defaults.StarterCode)
	if err != nil {
		return nil, err
	}
	cfg, err := s.loadConfig(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return &WorkspaceState{Messages: messages, Draft: draft, Preview: preview, Config: cfg}, nil
}

// SendPrompt runs one turn: append the user message, build the request
// context, call the model, append the reply, and apply extracted code to the
// draft. On any failure after the append the user message stays and nothing
// else is touched.
func (s *WorkspaceService) SendPrompt(ctx context.Context, workspaceID, prompt string) (*TurnResult, error) {
	if !s.tryAcquire(workspaceID) {
		return nil, domain.ErrActiveRequest
	}
	defer s.release(workspaceID)

	state, err := s.State(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	userMessage := domain.NewChatMessage(domain.RoleUser, prompt)
	state.Messages = append(state.Messages, userMessage)
	if err := s.saveMessages(ctx, workspaceID, state.Messages); err != nil {
		return nil, err
	}

	requestMessages := BuildRequestMessages(state.Messages, state.Draft, prompt)
	reply, err := s.completions.RequestCompletion(ctx, state.Config, requestMessages)
	if err != nil {
		return nil, err
	}

	assistantMessage := domain.NewChatMessage(domain.RoleAssistant, reply)
	state.Messages = append(state.Messages, assistantMessage)
	if err := s.saveMessages(ctx, workspaceID, state.Messages); err != nil {
		return nil, err
	}

	result := &TurnResult{Reply: reply, Messages: state.Messages}
	if code, ok := ExtractRunnableCode(reply); ok {
		if err := s.store.Set(ctx, workspaceID, slotDraft, code); err != nil {
			return nil, fmt.Errorf("apply draft: %w", err)
		}
		result.Code = code
	}
	return result, nil
}

// UpdateDraft persists a live edit of the draft buffer.
func (s *WorkspaceService) UpdateDraft(ctx context.Context, workspaceID, code string) error {
	if err := s.store.Set(ctx, workspaceID, slotDraft, code); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Run snapshots the draft into the preview buffer. The preview only ever
// changes here.
func (s *WorkspaceService) Run(ctx context.Context, workspaceID string) (*RunResult, error) {
	draft, err := s.loadText(ctx, workspaceID, slotDraft, s.defaults.StarterCode)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, workspaceID, slotPreview, draft); err != nil {
		return nil, fmt.Errorf("save preview: %w", err)
	}
	return &RunResult{Preview: draft, Title: DocumentTitle(draft)}, nil
}

// ClearChat resets the conversation to the system seed, leaving the code
// buffers alone.
func (s *WorkspaceService) ClearChat(ctx context.Context, workspaceID string) ([]domain.ChatMessage, error) {
	messages := s.defaultMessages()
	if err := s.saveMessages(ctx, workspaceID, messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// Reset restores messages and both code buffers to defaults. The completion
// config, including any credential, is kept.
func (s *WorkspaceService) Reset(ctx context.Context, workspaceID string) error {
	if _, err := s.ClearChat(ctx, workspaceID); err != nil {
		return err
	}
	if err := s.store.Set(ctx, workspaceID, slotDraft, s.defaults.StarterCode); err != nil {
		return fmt.Errorf("reset draft: %w", err)
	}
	if err := s.store.Set(ctx, workspaceID, slotPreview, s.defaults.StarterCode); err != nil {
		return fmt.Errorf("reset preview: %w", err)
	}
	return nil
}

// Authorize folds a credential from a successful login into the persisted
// completion config.
func (s *WorkspaceService) Authorize(ctx context.Context, workspaceID, apiKey string) error {
	cfg, err := s.loadConfig(ctx, workspaceID)
	if err != nil {
		return err
	}
	cfg.APIKey = apiKey
	return s.saveConfig(ctx, workspaceID, cfg)
}

// Deauthorize resets the completion config to the compiled-in defaults,
// discarding the credential.
func (s *WorkspaceService) Deauthorize(ctx context.Context, workspaceID string) error {
	return s.saveConfig(ctx, workspaceID, s.defaults.Completion)
}

func (s *WorkspaceService) loadMessages(ctx context.Context, workspaceID string) ([]domain.ChatMessage, error) {
	value, found, err := s.store.Get(ctx, workspaceID, slotChat)
	if err != nil {
		return nil, fmt.Errorf("load chat: %w", err)
	}
	if !found {
		return s.defaultMessages(), nil
	}
	var messages []domain.ChatMessage
	if err := json.Unmarshal([]byte(value), &messages); err != nil || len(messages) == 0 {
		return s.defaultMessages(), nil
	}
	return messages, nil
}

func (s *WorkspaceService) saveMessages(ctx context.Context, workspaceID string, messages []domain.ChatMessage) error {
	value, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("marshal chat: %w", err)
	}
	if err := s.store.Set(ctx, workspaceID, slotChat, string(value)); err != nil {
		return fmt.Errorf("save chat: %w", err)
	}
	return nil
}

func (s *WorkspaceService) loadText(ctx context.Context, workspaceID, name, fallback string) (string, error) {
	value, found, err := s.store.Get(ctx, workspaceID, name)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", name, err)
	}
	if !found {
		return fallback, nil
	}
	return value, nil
}

func (s *WorkspaceService) loadConfig(ctx context.Context, workspaceID string) (domain.CompletionConfig, error) {
	value, found, err := s.store.Get(ctx, workspaceID, slotConfig)
	if err != nil {
		return domain.CompletionConfig{}, fmt.Errorf("load config: %w", err)
	}
	if !found {
		return s.defaults.Completion, nil
	}
	var cfg domain.CompletionConfig
	if err := json.Unmarshal([]byte(value), &cfg); err != nil {
		return s.defaults.Completion, nil
	}
	return cfg, nil
}

func (s *WorkspaceService) saveConfig(ctx context.Context, workspaceID string, cfg domain.CompletionConfig) error {
	value, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := s.store.Set(ctx, workspaceID, slotConfig, string(value)); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}
