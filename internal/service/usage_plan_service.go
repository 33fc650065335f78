package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/raywall/apigateway-kit/internal/repository"
	"github.com/raywall/apigateway-kit/pkg/model"
	dto "github.com/raywall/apigateway-kit/pkg/types"
)

const apiKeyType = "API_KEY"

// UsagePlanService mantém usage plans, seus stages, API keys associadas e tags.
type UsagePlanService struct {
	APIGWRepo *repository.APIGWRepository
	Region    string
	Log       zerolog.Logger
}

// UsagePlanArn monta o ARN usado em TagResource/UntagResource.
func UsagePlanArn(region, id string) string {
	return fmt.Sprintf("arn:aws:apigateway:%s::/usageplans/%s", region, id)
}

// Create cria o plano e associa as API keys informadas.
func (s *UsagePlanService) Create(ctx context.Context, cfg *dto.UsagePlanConfig) (string, error) {
	req := new(model.CreateUsagePlanRequest).SetName(cfg.Name)
	if cfg.Description != "" {
		req.SetDescription(cfg.Description)
	}
	if len(cfg.Stages) > 0 {
		stages := make([]*model.ApiStage, 0, len(cfg.Stages))
		for _, st := range cfg.Stages {
			stages = append(stages, new(model.ApiStage).SetApiId(st.APIID).SetStage(st.Stage))
		}
		req.SetApiStages(stages)
	}
	if cfg.Throttle != nil {
		req.SetThrottle(new(model.ThrottleSettings).SetBurstLimit(cfg.Throttle.BurstLimit).SetRateLimit(cfg.Throttle.RateLimit))
	}
	if cfg.Quota != nil {
		req.SetQuota(new(model.QuotaSettings).
			SetLimit(cfg.Quota.Limit).
			SetOffset(cfg.Quota.Offset).
			SetPeriod(model.QuotaPeriodType(cfg.Quota.Period)))
	}
	if len(cfg.Tags) > 0 {
		req.SetTags(cfg.Tags)
	}

	out, err := s.APIGWRepo.CreateUsagePlan(ctx, req)
	if err != nil {
		return "", fmt.Errorf("creating usage plan %s: %w", cfg.Name, err)
	}
	id := out.GetId()
	s.Log.Info().Str("usage_plan_id", id).Str("name", cfg.Name).Msg("usage plan created")

	if err := s.associateKeys(ctx, id, cfg.APIKeyIDs); err != nil {
		return id, err
	}
	return id, nil
}

// Read devolve o estado atual do plano, ou nil quando ele não existe mais.
func (s *UsagePlanService) Read(ctx context.Context, id string) (*dto.UsagePlanConfig, error) {
	out, err := s.APIGWRepo.GetUsagePlan(ctx, new(model.GetUsagePlanRequest).SetUsagePlanId(id))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	cfg := &dto.UsagePlanConfig{
		Name:        out.GetName(),
		Description: out.GetDescription(),
		Tags:        out.GetTags(),
	}
	if t := out.GetThrottle(); t != nil {
		cfg.Throttle = &dto.ThrottleConfig{BurstLimit: t.GetBurstLimit(), RateLimit: t.GetRateLimit()}
	}
	if q := out.GetQuota(); q != nil {
		cfg.Quota = &dto.QuotaConfig{Limit: q.GetLimit(), Offset: q.GetOffset(), Period: string(q.GetPeriod())}
	}
	for _, st := range out.GetApiStages() {
		cfg.Stages = append(cfg.Stages, dto.StageConfig{APIID: st.GetApiId(), Stage: st.GetStage()})
	}

	keys, err := s.listKeyIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	cfg.APIKeyIDs = keys
	return cfg, nil
}

// Update aplica a diferença entre o estado anterior e o desejado.
func (s *UsagePlanService) Update(ctx context.Context, id string, old, desired *dto.UsagePlanConfig) error {
	if ops := UsagePlanPatches(old, desired); len(ops) > 0 {
		req := new(model.UpdateUsagePlanRequest).SetUsagePlanId(id).SetPatchOperations(ops)
		if _, err := s.APIGWRepo.UpdateUsagePlan(ctx, req); err != nil {
			return fmt.Errorf("updating usage plan %s: %w", id, err)
		}
	}

	added, removed := diffStrings(old.APIKeyIDs, desired.APIKeyIDs)
	for _, keyID := range removed {
		err := s.APIGWRepo.DeleteUsagePlanKey(ctx, new(model.DeleteUsagePlanKeyRequest).SetUsagePlanId(id).SetKeyId(keyID))
		if err != nil && !repository.IsNotFound(err) {
			return fmt.Errorf("removing key %s from usage plan %s: %w", keyID, id, err)
		}
	}
	if err := s.associateKeys(ctx, id, added); err != nil {
		return err
	}

	return syncTags(ctx, s.APIGWRepo, UsagePlanArn(s.Region, id), old.Tags, desired.Tags)
}

// Delete desassocia os stages e remove o plano.
func (s *UsagePlanService) Delete(ctx context.Context, id string, cfg *dto.UsagePlanConfig) error {
	if cfg != nil && len(cfg.Stages) > 0 {
		ops := make([]*model.PatchOperation, 0, len(cfg.Stages))
		for _, st := range cfg.Stages {
			ops = append(ops, patch(model.OpRemove, "/apiStages", stageKey(st)))
		}
		_, err := s.APIGWRepo.UpdateUsagePlan(ctx, new(model.UpdateUsagePlanRequest).SetUsagePlanId(id).SetPatchOperations(ops))
		if err != nil && !repository.IsNotFound(err) {
			return fmt.Errorf("detaching stages from usage plan %s: %w", id, err)
		}
	}

	err := s.APIGWRepo.DeleteUsagePlan(ctx, new(model.DeleteUsagePlanRequest).SetUsagePlanId(id))
	if err != nil && !repository.IsNotFound(err) {
		return err
	}
	return nil
}

// UsagePlanPatches calcula as operações de UpdateUsagePlan entre dois estados.
func UsagePlanPatches(old, desired *dto.UsagePlanConfig) []*model.PatchOperation {
	var ops []*model.PatchOperation

	if old.Name != desired.Name {
		ops = append(ops, patch(model.OpReplace, "/name", desired.Name))
	}
	if old.Description != desired.Description {
		ops = append(ops, patch(model.OpReplace, "/description", desired.Description))
	}

	switch {
	case desired.Throttle == nil && old.Throttle != nil:
		ops = append(ops, patch(model.OpRemove, "/throttle", ""))
	case desired.Throttle != nil:
		prev := old.Throttle
		if prev == nil {
			prev = &dto.ThrottleConfig{}
		}
		if prev.BurstLimit != desired.Throttle.BurstLimit || old.Throttle == nil {
			ops = append(ops, patch(model.OpReplace, "/throttle/burstLimit", strconv.Itoa(int(desired.Throttle.BurstLimit))))
		}
		if prev.RateLimit != desired.Throttle.RateLimit || old.Throttle == nil {
			ops = append(ops, patch(model.OpReplace, "/throttle/rateLimit", strconv.FormatFloat(desired.Throttle.RateLimit, 'f', -1, 64)))
		}
	}

	switch {
	case desired.Quota == nil && old.Quota != nil:
		ops = append(ops, patch(model.OpRemove, "/quota", ""))
	case desired.Quota != nil:
		prev := old.Quota
		if prev == nil {
			prev = &dto.QuotaConfig{}
		}
		if prev.Limit != desired.Quota.Limit || old.Quota == nil {
			ops = append(ops, patch(model.OpReplace, "/quota/limit", strconv.Itoa(int(desired.Quota.Limit))))
		}
		if prev.Offset != desired.Quota.Offset || old.Quota == nil {
			ops = append(ops, patch(model.OpReplace, "/quota/offset", strconv.Itoa(int(desired.Quota.Offset))))
		}
		if prev.Period != desired.Quota.Period || old.Quota == nil {
			ops = append(ops, patch(model.OpReplace, "/quota/period", desired.Quota.Period))
		}
	}

	added, removed := diffStrings(stageKeys(old.Stages), stageKeys(desired.Stages))
	for _, k := range removed {
		ops = append(ops, patch(model.OpRemove, "/apiStages", k))
	}
	for _, k := range added {
		ops = append(ops, patch(model.OpAdd, "/apiStages", k))
	}
	return ops
}

func (s *UsagePlanService) associateKeys(ctx context.Context, planID string, keyIDs []string) error {
	for _, keyID := range keyIDs {
		req := new(model.CreateUsagePlanKeyRequest).SetUsagePlanId(planID).SetKeyId(keyID).SetKeyType(apiKeyType)
		if _, err := s.APIGWRepo.CreateUsagePlanKey(ctx, req); err != nil {
			if repository.IsConflict(err) {
				continue
			}
			return fmt.Errorf("associating key %s with usage plan %s: %w", keyID, planID, err)
		}
	}
	return nil
}

func (s *UsagePlanService) listKeyIDs(ctx context.Context, planID string) ([]string, error) {
	var ids []string
	req := new(model.GetUsagePlanKeysRequest).SetUsagePlanId(planID).SetLimit(500)
	for {
		out, err := s.APIGWRepo.GetUsagePlanKeys(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("listing keys of usage plan %s: %w", planID, err)
		}
		for _, k := range out.GetItems() {
			ids = append(ids, k.GetId())
		}
		if out.GetPosition() == "" {
			break
		}
		req.SetPosition(out.GetPosition())
	}
	sort.Strings(ids)
	return ids, nil
}

// syncTags aplica TagResource/UntagResource para levar old a desired.
func syncTags(ctx context.Context, repo *repository.APIGWRepository, arn string, old, desired map[string]string) error {
	set := map[string]string{}
	for k, v := range desired {
		if prev, ok := old[k]; !ok || prev != v {
			set[k] = v
		}
	}
	var remove []string
	for k := range old {
		if _, ok := desired[k]; !ok {
			remove = append(remove, k)
		}
	}
	sort.Strings(remove)

	var errs []error
	if len(remove) > 0 {
		if err := repo.UntagResource(ctx, new(model.UntagResourceRequest).SetResourceArn(arn).SetTagKeys(remove)); err != nil {
			errs = append(errs, fmt.Errorf("untagging %s: %w", arn, err))
		}
	}
	if len(set) > 0 {
		if err := repo.TagResource(ctx, new(model.TagResourceRequest).SetResourceArn(arn).SetTags(set)); err != nil {
			errs = append(errs, fmt.Errorf("tagging %s: %w", arn, err))
		}
	}
	return errors.Join(errs...)
}

func patch(op model.Op, path, value string) *model.PatchOperation {
	p := new(model.PatchOperation).SetOp(op).SetPath(path)
	if value != "" {
		p.SetValue(value)
	}
	return p
}

func stageKey(st dto.StageConfig) string {
	return st.APIID + ":" + st.Stage
}

func stageKeys(stages []dto.StageConfig) []string {
	keys := make([]string, 0, len(stages))
	for _, st := range stages {
		keys = append(keys, stageKey(st))
	}
	return keys
}

// diffStrings devolve, ordenados, os itens só presentes em desired e os só
// presentes em old.
func diffStrings(old, desired []string) (added, removed []string) {
	inOld := make(map[string]bool, len(old))
	for _, v := range old {
		inOld[v] = true
	}
	inDesired := make(map[string]bool, len(desired))
	for _, v := range desired {
		inDesired[v] = true
		if !inOld[v] {
			added = append(added, v)
		}
	}
	for _, v := range old {
		if !inDesired[v] {
			removed = append(removed, v)
		}
	}
	sort.Strings(added)
	sort.Strings(removed)
	return added, removed
}
