package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/raywall/apigateway-kit/pkg/model"
	"github.com/raywall/apigateway-kit/pkg/types"
)

const resourcesPageSize = 500

// ListResources busca todos os recursos da API, seguindo a paginação.
func (r *APIGWRepository) ListResources(ctx context.Context, apiID string) ([]*model.Resource, error) {
	var (
		items    []*model.Resource
		position *string
	)
	for {
		page, err := r.GetResources(ctx, &model.GetResourcesRequest{
			RestApiId: aws.String(apiID),
			Position:  position,
			Limit:     aws.Int32(resourcesPageSize),
		})
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
		if page.GetPosition() == "" {
			return items, nil
		}
		position = page.Position
	}
}

// GetRootResourceID busca o ID do recurso raiz (/).
func (r *APIGWRepository) GetRootResourceID(ctx context.Context, apiID string) (string, error) {
	id, err := r.findResourceByPath(ctx, apiID, "/")
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("root resource not found for API ID: %s", apiID)
	}
	return id, nil
}

// EnsurePath cria os recursos do caminho que ainda não existem e retorna o ID
// do recurso final junto com todos os recursos percorridos.
func (r *APIGWRepository) EnsurePath(ctx context.Context, apiID, rootID, path string) (string, map[string]types.ResourceInfo, error) {
	path = strings.Trim(path, "/")
	resources := make(map[string]types.ResourceInfo)

	if path == "" {
		return rootID, resources, nil
	}

	existing, err := r.ListResources(ctx, apiID)
	if err != nil {
		return "", nil, err
	}
	byPath := make(map[string]string, len(existing))
	for _, res := range existing {
		byPath[res.GetPath()] = res.GetId()
	}

	currentParentID := rootID
	currentPath := ""

	for _, part := range strings.Split(path, "/") {
		currentPath = currentPath + "/" + part

		if id, ok := byPath[currentPath]; ok {
			currentParentID = id
			resources[currentPath] = types.ResourceInfo{ResourceID: id, PathPart: part}
			continue
		}

		created, err := r.CreateResource(ctx, &model.CreateResourceRequest{
			RestApiId: aws.String(apiID),
			ParentId:  aws.String(currentParentID),
			PathPart:  aws.String(part),
		})
		if err != nil {
			if !IsConflict(err) {
				return "", nil, fmt.Errorf("CreateResource failed for path %s: %w", currentPath, err)
			}
			// Outro processo criou o recurso entre a listagem e a criação.
			id, ferr := r.findResourceByPath(ctx, apiID, currentPath)
			if ferr != nil || id == "" {
				return "", nil, fmt.Errorf("CreateResource failed for path %s: %w", currentPath, err)
			}
			r.Log.Warn().Str("path", currentPath).Msg("resource already exists, reusing it")
			currentParentID = id
		} else {
			currentParentID = created.GetId()
		}

		byPath[currentPath] = currentParentID
		resources[currentPath] = types.ResourceInfo{ResourceID: currentParentID, PathPart: part}
	}

	return currentParentID, resources, nil
}

// LambdaIntegrationURI monta a URI de integração AWS_PROXY de uma função.
func LambdaIntegrationURI(region, functionArn string) string {
	return fmt.Sprintf("arn:aws:apigateway:%s:lambda:path/2015-03-31/functions/%s/invocations", region, functionArn)
}

// PutMethodAndIntegration cria o método, a integração Lambda proxy e as
// respostas 200 de método e integração.
func (r *APIGWRepository) PutMethodAndIntegration(ctx context.Context, apiID, resourceID string, route types.RouteConfig, integrationURI string) error {
	method := &model.PutMethodRequest{
		RestApiId:         aws.String(apiID),
		ResourceId:        aws.String(resourceID),
		HttpMethod:        aws.String(route.Method),
		AuthorizationType: aws.String(route.AuthorizationType()),
		ApiKeyRequired:    aws.Bool(route.APIKeyRequired),
	}
	if route.AuthorizationType() != "NONE" && route.AuthorizerID != "" {
		method.AuthorizerId = aws.String(route.AuthorizerID)
	}
	if _, err := r.PutMethod(ctx, method); err != nil && !IsConflict(err) {
		return fmt.Errorf("PutMethod failed: %w", err)
	}

	integration := &model.PutIntegrationRequest{
		RestApiId:             aws.String(apiID),
		ResourceId:            aws.String(resourceID),
		HttpMethod:            aws.String(route.Method),
		IntegrationHttpMethod: aws.String("POST"),
		Uri:                   aws.String(integrationURI),
	}
	integration.SetType(model.IntegrationTypeAwsProxy)
	if _, err := r.PutIntegration(ctx, integration); err != nil && !IsConflict(err) {
		return fmt.Errorf("PutIntegration failed: %w", err)
	}

	if _, err := r.PutMethodResponse(ctx, &model.PutMethodResponseRequest{
		RestApiId:  aws.String(apiID),
		ResourceId: aws.String(resourceID),
		HttpMethod: aws.String(route.Method),
		StatusCode: aws.String("200"),
	}); err != nil && !IsConflict(err) {
		return fmt.Errorf("PutMethodResponse failed: %w", err)
	}

	if _, err := r.PutIntegrationResponse(ctx, &model.PutIntegrationResponseRequest{
		RestApiId:  aws.String(apiID),
		ResourceId: aws.String(resourceID),
		HttpMethod: aws.String(route.Method),
		StatusCode: aws.String("200"),
	}); err != nil && !IsConflict(err) {
		return fmt.Errorf("PutIntegrationResponse failed: %w", err)
	}

	return nil
}

// DeployAPI cria um deployment no stage e retorna seu ID.
func (r *APIGWRepository) DeployAPI(ctx context.Context, apiID, stageName, description string) (string, error) {
	req := &model.CreateDeploymentRequest{
		RestApiId: aws.String(apiID),
		StageName: aws.String(stageName),
	}
	if description != "" {
		req.Description = aws.String(description)
	}
	out, err := r.CreateDeployment(ctx, req)
	if err != nil {
		return "", err
	}
	return out.GetId(), nil
}

// RemoveMethod deleta um método, ignorando métodos inexistentes.
func (r *APIGWRepository) RemoveMethod(ctx context.Context, apiID, resourceID, httpMethod string) error {
	err := r.DeleteMethod(ctx, &model.DeleteMethodRequest{
		RestApiId:  aws.String(apiID),
		ResourceId: aws.String(resourceID),
		HttpMethod: aws.String(httpMethod),
	})
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("DeleteMethod failed: %w", err)
	}
	return nil
}

// DeleteResources deleta recursos APIGW do mais profundo para o mais raso.
// Falhas individuais são registradas e não interrompem a remoção.
func (r *APIGWRepository) DeleteResources(ctx context.Context, apiID string, resources map[string]types.ResourceInfo) error {
	paths := make([]string, 0, len(resources))
	for path := range resources {
		paths = append(paths, path)
	}
	sort.Slice(paths, func(i, j int) bool {
		di, dj := strings.Count(paths[i], "/"), strings.Count(paths[j], "/")
		if di != dj {
			return di > dj
		}
		return paths[i] < paths[j]
	})

	for _, path := range paths {
		res := resources[path]
		err := retry(ctx, r.Retry, IsConflict, func() error {
			return r.DeleteResource(ctx, &model.DeleteResourceRequest{
				RestApiId:  aws.String(apiID),
				ResourceId: aws.String(res.ResourceID),
			})
		})
		if err != nil && !IsNotFound(err) {
			r.Log.Warn().Err(err).Str("path", path).Str("resource_id", res.ResourceID).Msg("failed to delete resource")
		}
	}

	return nil
}

// findResourceByPath retorna "" quando o caminho não existe.
func (r *APIGWRepository) findResourceByPath(ctx context.Context, apiID, path string) (string, error) {
	items, err := r.ListResources(ctx, apiID)
	if err != nil {
		return "", err
	}
	for _, res := range items {
		if res.GetPath() == path {
			return res.GetId(), nil
		}
	}
	return "", nil
}
