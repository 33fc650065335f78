package repository

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/apigateway-kit/internal/awsmock"
	"github.com/raywall/apigateway-kit/pkg/types"
)

// resourceTree simula os recursos de uma API para GetResources/CreateResource.
type resourceTree struct {
	items   []apigwtypes.Resource
	created []string
	nextID  int
}

func newResourceTree(paths map[string]string) *resourceTree {
	tree := &resourceTree{}
	for path, id := range paths {
		tree.items = append(tree.items, apigwtypes.Resource{Id: aws.String(id), Path: aws.String(path)})
	}
	return tree
}

func (rt *resourceTree) pathOf(id string) string {
	for _, it := range rt.items {
		if aws.ToString(it.Id) == id {
			return aws.ToString(it.Path)
		}
	}
	return ""
}

func (rt *resourceTree) mock() *awsmock.MockAPIGateway {
	return &awsmock.MockAPIGateway{
		GetResourcesFunc: func(ctx context.Context, params *apigw.GetResourcesInput, optFns ...func(*apigw.Options)) (*apigw.GetResourcesOutput, error) {
			return &apigw.GetResourcesOutput{Items: append([]apigwtypes.Resource(nil), rt.items...)}, nil
		},
		CreateResourceFunc: func(ctx context.Context, params *apigw.CreateResourceInput, optFns ...func(*apigw.Options)) (*apigw.CreateResourceOutput, error) {
			rt.nextID++
			id := "new" + string(rune('0'+rt.nextID))
			parent := rt.pathOf(aws.ToString(params.ParentId))
			path := parent + "/" + aws.ToString(params.PathPart)
			if parent == "/" {
				path = "/" + aws.ToString(params.PathPart)
			}
			rt.items = append(rt.items, apigwtypes.Resource{Id: aws.String(id), Path: aws.String(path)})
			rt.created = append(rt.created, path)
			return &apigw.CreateResourceOutput{Id: aws.String(id), Path: aws.String(path), PathPart: params.PathPart}, nil
		},
	}
}

func TestGetRootResourceID(t *testing.T) {
	tree := newResourceTree(map[string]string{"/": "root", "/users": "u1"})
	repo := newTestRepo(tree.mock())

	id, err := repo.GetRootResourceID(context.Background(), "api")
	require.NoError(t, err)
	assert.Equal(t, "root", id)

	empty := newTestRepo(newResourceTree(nil).mock())
	_, err = empty.GetRootResourceID(context.Background(), "api")
	assert.ErrorContains(t, err, "root resource not found")
}

func TestListResources_FollowsPosition(t *testing.T) {
	var positions []string
	api := &awsmock.MockAPIGateway{
		GetResourcesFunc: func(ctx context.Context, params *apigw.GetResourcesInput, optFns ...func(*apigw.Options)) (*apigw.GetResourcesOutput, error) {
			positions = append(positions, aws.ToString(params.Position))
			if params.Position == nil {
				return &apigw.GetResourcesOutput{
					Items:    []apigwtypes.Resource{{Id: aws.String("root"), Path: aws.String("/")}},
					Position: aws.String("page-2"),
				}, nil
			}
			return &apigw.GetResourcesOutput{Items: []apigwtypes.Resource{{Id: aws.String("u1"), Path: aws.String("/users")}}}, nil
		},
	}

	items, err := newTestRepo(api).ListResources(context.Background(), "api")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "page-2"}, positions)
	require.Len(t, items, 2)
	assert.Equal(t, "/users", items[1].GetPath())
}

func TestEnsurePath(t *testing.T) {
	tree := newResourceTree(map[string]string{"/": "root", "/users": "u1"})
	repo := newTestRepo(tree.mock())

	id, resources, err := repo.EnsurePath(context.Background(), "api", "root", "/users/{id}/orders/")
	require.NoError(t, err)

	assert.Equal(t, []string{"/users/{id}", "/users/{id}/orders"}, tree.created)
	assert.Equal(t, resources["/users/{id}/orders"].ResourceID, id)
	assert.Equal(t, types.ResourceInfo{ResourceID: "u1", PathPart: "users"}, resources["/users"])
	assert.Equal(t, "{id}", resources["/users/{id}"].PathPart)
	assert.Len(t, resources, 3)

	rootID, none, err := repo.EnsurePath(context.Background(), "api", "root", "/")
	require.NoError(t, err)
	assert.Equal(t, "root", rootID)
	assert.Empty(t, none)
}

func TestEnsurePath_ConflictReusesResource(t *testing.T) {
	listed := 0
	api := &awsmock.MockAPIGateway{
		GetResourcesFunc: func(ctx context.Context, params *apigw.GetResourcesInput, optFns ...func(*apigw.Options)) (*apigw.GetResourcesOutput, error) {
			listed++
			items := []apigwtypes.Resource{{Id: aws.String("root"), Path: aws.String("/")}}
			if listed > 1 {
				items = append(items, apigwtypes.Resource{Id: aws.String("raced"), Path: aws.String("/health")})
			}
			return &apigw.GetResourcesOutput{Items: items}, nil
		},
		CreateResourceFunc: func(ctx context.Context, params *apigw.CreateResourceInput, optFns ...func(*apigw.Options)) (*apigw.CreateResourceOutput, error) {
			return nil, &smithy.GenericAPIError{Code: "ConflictException", Message: "Another resource with the same parent already has this name"}
		},
	}

	id, resources, err := newTestRepo(api).EnsurePath(context.Background(), "api", "root", "health")
	require.NoError(t, err)
	assert.Equal(t, "raced", id)
	assert.Equal(t, "raced", resources["/health"].ResourceID)
}

func TestPutMethodAndIntegration(t *testing.T) {
	var (
		method      *apigw.PutMethodInput
		integration *apigw.PutIntegrationInput
		responses   []string
	)
	api := &awsmock.MockAPIGateway{
		PutMethodFunc: func(ctx context.Context, params *apigw.PutMethodInput, optFns ...func(*apigw.Options)) (*apigw.PutMethodOutput, error) {
			method = params
			return &apigw.PutMethodOutput{}, nil
		},
		PutIntegrationFunc: func(ctx context.Context, params *apigw.PutIntegrationInput, optFns ...func(*apigw.Options)) (*apigw.PutIntegrationOutput, error) {
			integration = params
			return nil, &smithy.GenericAPIError{Code: "ConflictException"}
		},
		PutMethodResponseFunc: func(ctx context.Context, params *apigw.PutMethodResponseInput, optFns ...func(*apigw.Options)) (*apigw.PutMethodResponseOutput, error) {
			responses = append(responses, "method:"+aws.ToString(params.StatusCode))
			return &apigw.PutMethodResponseOutput{}, nil
		},
		PutIntegrationResponseFunc: func(ctx context.Context, params *apigw.PutIntegrationResponseInput, optFns ...func(*apigw.Options)) (*apigw.PutIntegrationResponseOutput, error) {
			responses = append(responses, "integration:"+aws.ToString(params.StatusCode))
			return &apigw.PutIntegrationResponseOutput{}, nil
		},
	}

	route := types.RouteConfig{Path: "/users", Method: "GET", Authorization: "custom", AuthorizerID: "auth1", APIKeyRequired: true}
	uri := LambdaIntegrationURI("us-east-1", "arn:aws:lambda:us-east-1:123:function:users")

	err := newTestRepo(api).PutMethodAndIntegration(context.Background(), "api", "res", route, uri)
	require.NoError(t, err)

	assert.Equal(t, "CUSTOM", aws.ToString(method.AuthorizationType))
	assert.Equal(t, "auth1", aws.ToString(method.AuthorizerId))
	assert.True(t, method.ApiKeyRequired)
	assert.Equal(t, apigwtypes.IntegrationTypeAwsProxy, integration.Type)
	assert.Equal(t, "arn:aws:apigateway:us-east-1:lambda:path/2015-03-31/functions/arn:aws:lambda:us-east-1:123:function:users/invocations", aws.ToString(integration.Uri))
	assert.Equal(t, []string{"method:200", "integration:200"}, responses)
}

func TestPutMethodAndIntegration_NoAuthorizerWhenNone(t *testing.T) {
	var method *apigw.PutMethodInput
	api := &awsmock.MockAPIGateway{
		PutMethodFunc: func(ctx context.Context, params *apigw.PutMethodInput, optFns ...func(*apigw.Options)) (*apigw.PutMethodOutput, error) {
			method = params
			return nil, &smithy.GenericAPIError{Code: "BadRequestException", Message: "Invalid authorizer"}
		},
	}

	err := newTestRepo(api).PutMethodAndIntegration(context.Background(), "api", "res",
		types.RouteConfig{Path: "/", Method: "POST", AuthorizerID: "ignored"}, "uri")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PutMethod failed")
	assert.Equal(t, "NONE", aws.ToString(method.AuthorizationType))
	assert.Nil(t, method.AuthorizerId)
}

func TestDeleteResources_DeepestFirst(t *testing.T) {
	var deleted []string
	api := &awsmock.MockAPIGateway{
		DeleteResourceFunc: func(ctx context.Context, params *apigw.DeleteResourceInput, optFns ...func(*apigw.Options)) (*apigw.DeleteResourceOutput, error) {
			id := aws.ToString(params.ResourceId)
			deleted = append(deleted, id)
			if id == "gone" {
				return nil, &smithy.GenericAPIError{Code: "NotFoundException"}
			}
			return &apigw.DeleteResourceOutput{}, nil
		},
	}

	err := newTestRepo(api).DeleteResources(context.Background(), "api", map[string]types.ResourceInfo{
		"/a":     {ResourceID: "a"},
		"/a/b/c": {ResourceID: "c"},
		"/a/b":   {ResourceID: "b"},
		"/z":     {ResourceID: "gone"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a", "gone"}, deleted)
}

func TestDeleteResources_RetriesConflict(t *testing.T) {
	calls := 0
	api := &awsmock.MockAPIGateway{
		DeleteResourceFunc: func(ctx context.Context, params *apigw.DeleteResourceInput, optFns ...func(*apigw.Options)) (*apigw.DeleteResourceOutput, error) {
			calls++
			if calls == 1 {
				return nil, &smithy.GenericAPIError{Code: "ConflictException", Message: "resource in use"}
			}
			return &apigw.DeleteResourceOutput{}, nil
		},
	}

	err := newTestRepo(api).DeleteResources(context.Background(), "api", map[string]types.ResourceInfo{"/a": {ResourceID: "a"}})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRemoveMethod_IgnoresNotFound(t *testing.T) {
	api := &awsmock.MockAPIGateway{
		DeleteMethodFunc: func(ctx context.Context, params *apigw.DeleteMethodInput, optFns ...func(*apigw.Options)) (*apigw.DeleteMethodOutput, error) {
			if aws.ToString(params.HttpMethod) == "GET" {
				return nil, &smithy.GenericAPIError{Code: "NotFoundException"}
			}
			return nil, &smithy.GenericAPIError{Code: "UnauthorizedException"}
		},
	}
	repo := newTestRepo(api)

	assert.NoError(t, repo.RemoveMethod(context.Background(), "api", "res", "GET"))
	assert.ErrorContains(t, repo.RemoveMethod(context.Background(), "api", "res", "POST"), "DeleteMethod failed")
}
