// Package moderation implements the comment moderation pipeline: keyword
// rules (block / flag / auto-replace) loaded through a TTL snapshot cache,
// a spam heuristic, shadow-ban enforcement, and report-threshold auto-hide,
// combined into a single decision per submission.
package moderation

import (
	"fmt"
	"log"
	"regexp"

	"sensiblenews/internal/models"
)

// wordPattern tokenizes content into word-ish runs for keyword matching.
var wordPattern = regexp.MustCompile(`\b[\w']+\b`)

// Result is the decision record for one moderation pass. It is transient:
// the caller extracts the persisted fields (visibility, review flag, reason)
// and discards it.
type Result struct {
	OriginalContent  string
	ModeratedContent string
	IsVisible        bool
	IsShadowBanned   bool
	IsBlocked        bool
	IsAutoHidden     bool
	RequiresReview   bool
	BlockReason      string
	FlagReason       string
	AutoHideReason   string
	SpamScore        float64
}

// Outcome returns a single label summarising the decision, for metrics.
func (r *Result) Outcome() string {
	switch {
	case r.IsShadowBanned:
		return "shadow_banned"
	case r.IsBlocked:
		return "blocked"
	case r.IsAutoHidden:
		return "auto_hidden"
	case r.RequiresReview:
		return "flagged"
	default:
		return "allowed"
	}
}

// Engine orchestrates the moderation checks. It holds no mutable state of
// its own; every decision is a function of the content, the author's ban
// state, the existing report count, and the current keyword snapshot.
type Engine struct {
	keywords          *KeywordCache
	autoHideThreshold int
}

func NewEngine(keywords *KeywordCache, autoHideThreshold int) *Engine {
	return &Engine{
		keywords:          keywords,
		autoHideThreshold: autoHideThreshold,
	}
}

// Moderate runs the full decision pipeline over a comment submission.
//
// Check order is significant: an active shadow ban short-circuits before any
// keyword or spam processing; a blocked keyword short-circuits before
// replacement. Replacement always runs when the content isn't blocked, and
// flagged-keyword, report-threshold and spam checks then stack their flags
// onto the result without overriding an earlier visibility decision.
//
// An error is only returned when the keyword store is unreachable and the
// cache is configured fail-closed.
func (e *Engine) Moderate(content string, author *models.User, existingReportCount int) (*Result, error) {
	result := &Result{
		OriginalContent:  content,
		ModeratedContent: content,
		IsVisible:        true,
	}

	// Shadow-banned users' comments never surface, regardless of content.
	if author.ShadowBanActive() {
		result.IsShadowBanned = true
		result.IsVisible = false
		log.Printf("Shadow banned user %d attempted to comment", author.ID)
		return result, nil
	}

	keywords, err := e.keywords.GetActiveKeywords()
	if err != nil {
		return nil, err
	}

	words := extractWords(content)

	if containsAny(words, keywords.IsBlockedWord) {
		result.IsBlocked = true
		result.IsVisible = false
		result.BlockReason = "Comment contains prohibited content"
		log.Printf("Comment blocked for user %d: contains blocked keywords", author.ID)
		return result, nil
	}

	result.ModeratedContent = applyReplacements(content, keywords.Replacements)

	if containsAny(words, keywords.IsFlaggedWord) {
		result.RequiresReview = true
		result.FlagReason = "Contains flagged keywords"
	}

	if existingReportCount >= e.autoHideThreshold {
		result.IsAutoHidden = true
		result.IsVisible = false
		result.AutoHideReason = fmt.Sprintf("Exceeded report threshold (%d reports)", existingReportCount)
	}

	if LooksLikeSpam(content) {
		result.SpamScore = Score(content)
		if result.SpamScore > 0.7 {
			result.RequiresReview = true
			result.FlagReason = "Likely spam"
		}
	}

	return result, nil
}

// InvalidateKeywordCache forces the next moderation pass to reload keyword
// rules, so administrator edits take effect without waiting for expiry.
func (e *Engine) InvalidateKeywordCache() {
	e.keywords.Invalidate()
}

func extractWords(content string) []string {
	return wordPattern.FindAllString(content, -1)
}

func containsAny(words []string, match func(string) bool) bool {
	for _, w := range words {
		if match(w) {
			return true
		}
	}
	return false
}

// applyReplacements substitutes each replace-keyword, whole-word and
// case-insensitive, with its replacement text.
func applyReplacements(content string, replacements map[string]string) string {
	result := content
	for keyword, replacement := range replacements {
		pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
		if err != nil {
			continue
		}
		result = pattern.ReplaceAllLiteralString(result, replacement)
	}
	return result
}
