package core

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/huangsam/ringside/core/algo"
	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
)

// CreateRequest carries the inputs of wrestler creation.
type CreateRequest struct {
	GuildID           string
	UserID            string
	Name              string
	Gender            schema.Gender
	Answers           schema.QuestionnaireAnswers
	FinisherCategory  string
	SignatureCategory string
}

// CreateWrestler runs the creation workflow: classification, trait synthesis, a height roll,
// persona and move choices through chooser, then persistence.
func (l *League) CreateWrestler(ctx context.Context, req CreateRequest, chooser Chooser) (schema.Wrestler, error) {
	name, err := validateName("wrestler", req.Name)
	if err != nil {
		return schema.Wrestler{}, err
	}
	if req.Gender != schema.Male && req.Gender != schema.Female {
		return schema.Wrestler{}, fmt.Errorf("%w: gender must be Male or Female", contract.ErrInvalidInput)
	}
	if err := ValidateAnswers(req.Answers); err != nil {
		return schema.Wrestler{}, err
	}
	finisherCat, ok := l.catalog.Category(req.FinisherCategory)
	if !ok {
		return schema.Wrestler{}, fmt.Errorf("%w: unknown move category %q", contract.ErrInvalidInput, req.FinisherCategory)
	}
	signatureCat, ok := l.catalog.Category(req.SignatureCategory)
	if !ok {
		return schema.Wrestler{}, fmt.Errorf("%w: unknown move category %q", contract.ErrInvalidInput, req.SignatureCategory)
	}

	owned, err := l.store.ListUserWrestlers(ctx, req.GuildID, req.UserID)
	if err != nil {
		return schema.Wrestler{}, err
	}
	limit, err := l.UserLimit(ctx, req.GuildID, req.UserID)
	if err != nil {
		return schema.Wrestler{}, err
	}
	active := 0
	for _, w := range owned {
		if strings.EqualFold(w.Name, name) {
			return schema.Wrestler{}, fmt.Errorf("%w: you already have a wrestler named %s", contract.ErrDuplicate, w.Name)
		}
		if !w.Retired {
			active++
		}
	}
	if active >= limit {
		return schema.Wrestler{}, fmt.Errorf("%w: you can have at most %d active wrestlers", contract.ErrLimitReached, limit)
	}

	class := algo.Classify(req.Answers)
	traits := algo.Synthesize(req.Answers, l.rng)

	heights, ok := l.catalog.Height(class.Archetype, req.Gender)
	if !ok {
		return schema.Wrestler{}, fmt.Errorf("catalog has no %s height range for %s", req.Gender, class.Archetype)
	}
	heightCm := l.rng.between(heights.CmMin, heights.CmMax)

	bodyType, err := choose(ctx, chooser, PromptBodyType, l.catalog.BodyTypeNames())
	if err != nil {
		return schema.Wrestler{}, err
	}

	var personas []string
	for _, p := range l.catalog.AvailablePersonas(class.Archetype, class.WeightClass, class.Alignment) {
		personas = append(personas, p.Name)
	}
	persona, err := choose(ctx, chooser, PromptPersona, personas)
	if err != nil {
		return schema.Wrestler{}, err
	}

	taken, err := l.store.TakenMoves(ctx, req.GuildID, 0)
	if err != nil {
		return schema.Wrestler{}, err
	}
	finisher, err := l.pickMove(ctx, chooser, PromptFinisher, finisherCat.Moves, taken, class)
	if err != nil {
		return schema.Wrestler{}, err
	}
	taken[finisher] = struct{}{}
	signature, err := l.pickMove(ctx, chooser, PromptSignature, signatureCat.Moves, taken, class)
	if err != nil {
		return schema.Wrestler{}, err
	}

	now := l.now()
	w := schema.Wrestler{
		GuildID:     req.GuildID,
		UserID:      req.UserID,
		Name:        name,
		Gender:      req.Gender,
		Archetype:   class.Archetype,
		Alignment:   class.Alignment,
		WeightClass: class.WeightClass,
		Persona:     persona,
		HeightCm:    heightCm,
		HeightFeet:  schema.FormatFeet(float64(heightCm) / 30.48),
		BodyType:    bodyType,
		Finisher:    finisher,
		Signature:   signature,
		Attributes:  l.catalog.BaseAttributes(class.Archetype, persona),
		Personality: traits,
		Level:       1,
		LastActive:  &now,
		CreatedAt:   now,
	}

	// Choices above can take a while, so move ownership is checked again with the insert.
	err = l.store.InTx(ctx, func(tx contract.LeagueStore) error {
		taken, err := tx.TakenMoves(ctx, req.GuildID, 0)
		if err != nil {
			return err
		}
		for _, move := range []string{w.Finisher, w.Signature} {
			if _, clash := taken[move]; clash {
				return fmt.Errorf("%w: %s was just taken by another wrestler", contract.ErrDuplicate, move)
			}
		}
		_, err = tx.CreateWrestler(ctx, &w)
		return err
	})
	if err != nil {
		return schema.Wrestler{}, err
	}
	return w, nil
}

// pickMove recommends moves from a category that nobody holds and lets chooser pick one.
func (l *League) pickMove(ctx context.Context, chooser Chooser, prompt string, moves []string, taken map[string]struct{}, class schema.ArchetypeResult) (string, error) {
	free := make([]string, 0, len(moves))
	for _, m := range moves {
		if _, ok := taken[m]; !ok {
			free = append(free, m)
		}
	}
	recs := algo.Recommend(free, class.Alignment, class.Archetype)
	if len(recs) == 0 {
		return "", fmt.Errorf("%w: no eligible moves for %s", contract.ErrNotEligible, prompt)
	}
	return choose(ctx, chooser, prompt, recs)
}

// RecommendMoves ranks the free moves of a category for an alignment and archetype.
func (l *League) RecommendMoves(ctx context.Context, guildID, category string, align schema.Alignment, archetype schema.Archetype) ([]string, error) {
	cat, ok := l.catalog.Category(category)
	if !ok {
		return nil, fmt.Errorf("%w: unknown move category %q", contract.ErrInvalidInput, category)
	}
	moves := cat.Moves
	if guildID != "" {
		taken, err := l.store.TakenMoves(ctx, guildID, 0)
		if err != nil {
			return nil, err
		}
		moves = slices.DeleteFunc(slices.Clone(moves), func(m string) bool {
			_, ok := taken[m]
			return ok
		})
	}
	return algo.Recommend(moves, align, archetype), nil
}

// Roster returns a guild's wrestlers in creation order.
func (l *League) Roster(ctx context.Context, guildID string, includeRetired bool) ([]schema.Wrestler, error) {
	return l.store.ListWrestlers(ctx, guildID, includeRetired)
}

// UserWrestlers returns the wrestlers a user owns in a guild.
func (l *League) UserWrestlers(ctx context.Context, guildID, userID string) ([]schema.Wrestler, error) {
	return l.store.ListUserWrestlers(ctx, guildID, userID)
}

// Turn changes a wrestler's alignment. It picks a new persona through chooser, shifts traits,
// replaces heel moves on a face turn and charges algo.TurnCost.
func (l *League) Turn(ctx context.Context, actor Actor, guildID string, wrestlerID int64, to schema.Alignment, chooser Chooser) (schema.TurnOutcome, error) {
	w, err := ownedWrestler(ctx, l.store, actor, guildID, wrestlerID)
	if err != nil {
		return schema.TurnOutcome{}, err
	}
	if err := l.checkTurn(ctx, &w, to); err != nil {
		return schema.TurnOutcome{}, err
	}

	out := schema.TurnOutcome{
		FromAlignment: w.Alignment,
		ToAlignment:   to,
		FromPersona:   w.Persona,
		OldTraits:     w.Personality,
		NewTraits:     algo.AdjustTraits(w.Personality, to),
		OldFinisher:   w.Finisher,
		OldSignature:  w.Signature,
		Cost:          algo.TurnCost,
	}
	if out.ToPersona, err = choose(ctx, chooser, PromptPersona, l.catalog.PersonasForAlignment(to)); err != nil {
		return schema.TurnOutcome{}, err
	}
	out.PersonaDiff = algo.PersonaDiff(l.catalog, out.FromPersona, out.ToPersona)

	if to == schema.Face {
		taken, err := l.store.TakenMoves(ctx, guildID, w.ID)
		if err != nil {
			return schema.TurnOutcome{}, err
		}
		if algo.IsHeelMove(w.Finisher) {
			taken[w.Signature] = struct{}{}
			if out.NewFinisher, err = l.replaceHeelMove(ctx, chooser, PromptFinisher, w.Finisher, taken, w.Archetype); err != nil {
				return schema.TurnOutcome{}, err
			}
			delete(taken, w.Signature)
		}
		if algo.IsHeelMove(w.Signature) {
			if out.NewFinisher != "" {
				taken[out.NewFinisher] = struct{}{}
			} else {
				taken[w.Finisher] = struct{}{}
			}
			if out.NewSignature, err = l.replaceHeelMove(ctx, chooser, PromptSignature, w.Signature, taken, w.Archetype); err != nil {
				return schema.TurnOutcome{}, err
			}
		}
	}

	err = l.store.InTx(ctx, func(tx contract.LeagueStore) error {
		cur, err := ownedWrestler(ctx, tx, actor, guildID, wrestlerID)
		if err != nil {
			return err
		}
		if cur.Alignment != out.FromAlignment {
			return fmt.Errorf("%w: %s changed alignment during the turn", contract.ErrInvalidState, cur.Name)
		}
		balance, err := tx.AdjustCurrency(ctx, cur.ID, -algo.TurnCost)
		if err != nil {
			return err
		}
		now := l.now()
		cur.Alignment = to
		cur.Persona = out.ToPersona
		cur.Personality = out.NewTraits
		if out.NewFinisher != "" {
			cur.Finisher = out.NewFinisher
		}
		if out.NewSignature != "" {
			cur.Signature = out.NewSignature
		}
		cur.LastTurnDate = &now
		if err := tx.UpdateWrestler(ctx, &cur); err != nil {
			return err
		}
		if _, err := tx.RecordTurn(ctx, &schema.TurnRecord{
			WrestlerID:    cur.ID,
			FromAlignment: out.FromAlignment,
			ToAlignment:   to,
			FromPersona:   out.FromPersona,
			ToPersona:     out.ToPersona,
			TurnedAt:      now,
		}); err != nil {
			return err
		}
		cur.Currency = balance
		out.Wrestler = cur
		return nil
	})
	if err != nil {
		return schema.TurnOutcome{}, err
	}
	return out, nil
}

// checkTurn validates alignment, cooldown and funds before any choice is offered.
func (l *League) checkTurn(ctx context.Context, w *schema.Wrestler, to schema.Alignment) error {
	if _, ok := schema.ParseAlignment(string(to)); !ok {
		return fmt.Errorf("%w: unknown alignment %q", contract.ErrInvalidInput, to)
	}
	if w.Retired {
		return fmt.Errorf("%w: %s is retired", contract.ErrInvalidState, w.Name)
	}
	if w.Alignment == to {
		return fmt.Errorf("%w: %s is already %s", contract.ErrInvalidInput, w.Name, to)
	}
	s, err := l.GetSettings(ctx, w.GuildID)
	if err != nil {
		return err
	}
	if days := algo.CooldownRemaining(w.LastTurnDate, l.now(), s.TurnCooldownDays); days > 0 {
		return fmt.Errorf("%w: %s can turn again in %d days", contract.ErrCooldown, w.Name, days)
	}
	if w.Currency < algo.TurnCost {
		return fmt.Errorf("%w: a turn costs %s", contract.ErrInsufficientFunds, s.FormatAmount(algo.TurnCost))
	}
	return nil
}

// replaceHeelMove offers face-safe moves from the category of the move being replaced.
func (l *League) replaceHeelMove(ctx context.Context, chooser Chooser, prompt, move string, taken map[string]struct{}, archetype schema.Archetype) (string, error) {
	var pool []string
	if name, ok := l.catalog.CategoryOf(move); ok {
		cat, _ := l.catalog.Category(name)
		pool = cat.Moves
	} else {
		for _, cat := range l.catalog.Categories {
			pool = append(pool, cat.Moves...)
		}
	}
	return l.pickMove(ctx, chooser, prompt, algo.FilterOut(pool, schema.HeelMoves), taken, schema.ArchetypeResult{
		Archetype: archetype,
		Alignment: schema.Face,
	})
}

// Rename gives a wrestler a new name for algo.RenameCost and keeps the old one on record.
func (l *League) Rename(ctx context.Context, actor Actor, guildID string, wrestlerID int64, newName string) (schema.RenameOutcome, error) {
	name, err := validateName("wrestler", newName)
	if err != nil {
		return schema.RenameOutcome{}, err
	}
	s, err := l.GetSettings(ctx, guildID)
	if err != nil {
		return schema.RenameOutcome{}, err
	}
	var out schema.RenameOutcome
	err = l.store.InTx(ctx, func(tx contract.LeagueStore) error {
		w, err := ownedWrestler(ctx, tx, actor, guildID, wrestlerID)
		if err != nil {
			return err
		}
		if w.Retired {
			return fmt.Errorf("%w: %s is retired", contract.ErrInvalidState, w.Name)
		}
		if w.Name == name {
			return fmt.Errorf("%w: %s already has that name", contract.ErrInvalidInput, w.Name)
		}
		if days := algo.CooldownRemaining(w.LastRenameDate, l.now(), s.TurnCooldownDays); days > 0 {
			return fmt.Errorf("%w: %s can be renamed again in %d days", contract.ErrCooldown, w.Name, days)
		}
		if other, err := tx.FindWrestler(ctx, guildID, name); err == nil && other.ID != w.ID {
			return fmt.Errorf("%w: the name %s is taken", contract.ErrDuplicate, other.Name)
		} else if err != nil && !isNotFound(err) {
			return err
		}
		if w.Currency < algo.RenameCost {
			return fmt.Errorf("%w: a rename costs %s", contract.ErrInsufficientFunds, s.FormatAmount(algo.RenameCost))
		}
		if _, err := tx.AdjustCurrency(ctx, w.ID, -algo.RenameCost); err != nil {
			return err
		}
		now := l.now()
		out = schema.RenameOutcome{WrestlerID: w.ID, OldName: w.Name, NewName: name, Cost: algo.RenameCost}
		w.FormerNames = append(w.FormerNames, w.Name)
		w.Name = name
		w.LastRenameDate = &now
		return tx.UpdateWrestler(ctx, &w)
	})
	return out, err
}

// Retire takes a wrestler out of the league. Retired wrestlers free their moves and stop earning.
func (l *League) Retire(ctx context.Context, actor Actor, guildID string, wrestlerID int64) (schema.Wrestler, error) {
	var w schema.Wrestler
	err := l.store.InTx(ctx, func(tx contract.LeagueStore) error {
		var err error
		if w, err = ownedWrestler(ctx, tx, actor, guildID, wrestlerID); err != nil {
			return err
		}
		if w.Retired {
			return fmt.Errorf("%w: %s is already retired", contract.ErrInvalidState, w.Name)
		}
		w.Retired = true
		return tx.UpdateWrestler(ctx, &w)
	})
	return w, err
}
