package dynamodb

import (
	"context"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	awsv2dynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsv2types "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	awsv2xray "github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
	"github.com/aws/aws-xray-sdk-go/xray"
	"textile-erp-nav/internal/domain"
)

// API is the subset of the DynamoDB client the repositories use.
type API interface {
	GetItem(ctx context.Context, params *awsv2dynamodb.GetItemInput, optFns ...func(*awsv2dynamodb.Options)) (*awsv2dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *awsv2dynamodb.PutItemInput, optFns ...func(*awsv2dynamodb.Options)) (*awsv2dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *awsv2dynamodb.QueryInput, optFns ...func(*awsv2dynamodb.Options)) (*awsv2dynamodb.QueryOutput, error)
}

type Client struct {
	db        API
	tableName string
}

func NewClient(ctx context.Context, region, tableName string) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	awsv2xray.AWSV2Instrumentor(&cfg.APIOptions)
	client := awsv2dynamodb.NewFromConfig(cfg)
	return &Client{db: client, tableName: tableName}, nil
}

// NewClientWithAPI wraps an existing API implementation.
func NewClientWithAPI(api API, tableName string) *Client {
	return &Client{db: api, tableName: tableName}
}

const departmentsPK = "DEPARTMENTS"

func deptSK(id int64) string        { return "DEPT#" + strconv.FormatInt(id, 10) }
func userPK(userID string) string   { return "USER#" + userID }
func userProfileSK() string         { return "PROFILE" }
func userRoleSK(name string) string { return "ROLE#" + name }
func userPermSK(code string) string { return "PERM#" + code }

func (c *Client) queryPrefix(ctx context.Context, segment, pk, skPrefix string) ([]map[string]awsv2types.AttributeValue, error) {
	var items []map[string]awsv2types.AttributeValue
	err := xray.Capture(ctx, segment, func(ctx context.Context) error {
		var startKey map[string]awsv2types.AttributeValue
		for {
			out, err := c.db.Query(ctx, &awsv2dynamodb.QueryInput{
				TableName:              aws.String(c.tableName),
				KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
				ExpressionAttributeValues: map[string]awsv2types.AttributeValue{
					":pk": &awsv2types.AttributeValueMemberS{Value: pk},
					":sk": &awsv2types.AttributeValueMemberS{Value: skPrefix},
				},
				ExclusiveStartKey: startKey,
			})
			if err != nil {
				return err
			}
			items = append(items, out.Items...)
			if len(out.LastEvaluatedKey) == 0 {
				return nil
			}
			startKey = out.LastEvaluatedKey
		}
	})
	return items, err
}

// put overwrites the item, so reapplying a seed is idempotent.
func (c *Client) put(ctx context.Context, segment string, item map[string]any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	return xray.Capture(ctx, segment, func(ctx context.Context) error {
		_, err := c.db.PutItem(ctx, &awsv2dynamodb.PutItemInput{
			TableName: aws.String(c.tableName),
			Item:      av,
		})
		return err
	})
}

type DepartmentRepository struct{ client *Client }

type UserRepository struct{ client *Client }

type RoleRepository struct{ client *Client }

type PermissionRepository struct{ client *Client }

func NewDepartmentRepository(client *Client) *DepartmentRepository {
	return &DepartmentRepository{client: client}
}

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

func NewRoleRepository(client *Client) *RoleRepository {
	return &RoleRepository{client: client}
}

func NewPermissionRepository(client *Client) *PermissionRepository {
	return &PermissionRepository{client: client}
}

func (r *DepartmentRepository) Put(ctx context.Context, dept domain.Department) error {
	return r.client.put(ctx, "DynamoDB.PutDepartment", map[string]any{
		"PK":         departmentsPK,
		"SK":         deptSK(dept.ID),
		"EntityType": "DEPARTMENT",
		"ID":         dept.ID,
		"Code":       dept.Code,
		"Name":       dept.Name,
	})
}

func (r *DepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	items, err := r.client.queryPrefix(ctx, "DynamoDB.QueryDepartments", departmentsPK, "DEPT#")
	if err != nil {
		return nil, err
	}
	departments := make([]domain.Department, 0, len(items))
	for _, item := range items {
		raw := struct {
			ID   int64  `dynamodbav:"ID"`
			Code string `dynamodbav:"Code"`
			Name string `dynamodbav:"Name"`
		}{}
		if err := attributevalue.UnmarshalMap(item, &raw); err != nil {
			return nil, err
		}
		departments = append(departments, domain.Department{ID: raw.ID, Code: raw.Code, Name: raw.Name})
	}
	return departments, nil
}

func (r *UserRepository) Put(ctx context.Context, user domain.User) error {
	if user.ID == "" {
		return domain.ErrInvalidInput
	}
	item := map[string]any{
		"PK":         userPK(user.ID),
		"SK":         userProfileSK(),
		"EntityType": "USER",
		"ID":         user.ID,
		"FullName":   user.FullName,
	}
	if user.DepartmentID != nil {
		item["DepartmentID"] = *user.DepartmentID
	}
	return r.client.put(ctx, "DynamoDB.PutUser", item)
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (domain.User, error) {
	var out *awsv2dynamodb.GetItemOutput
	err := xray.Capture(ctx, "DynamoDB.GetUser", func(ctx context.Context) error {
		var e error
		out, e = r.client.db.GetItem(ctx, &awsv2dynamodb.GetItemInput{
			TableName: aws.String(r.client.tableName),
			Key: map[string]awsv2types.AttributeValue{
				"PK": &awsv2types.AttributeValueMemberS{Value: userPK(userID)},
				"SK": &awsv2types.AttributeValueMemberS{Value: userProfileSK()},
			},
		})
		return e
	})
	if err != nil {
		return domain.User{}, err
	}
	if out.Item == nil {
		return domain.User{}, domain.ErrNotFound
	}
	raw := struct {
		ID           string `dynamodbav:"ID"`
		FullName     string `dynamodbav:"FullName"`
		DepartmentID *int64 `dynamodbav:"DepartmentID"`
	}{}
	if err := attributevalue.UnmarshalMap(out.Item, &raw); err != nil {
		return domain.User{}, err
	}
	return domain.User{ID: raw.ID, FullName: raw.FullName, DepartmentID: raw.DepartmentID}, nil
}

func (r *RoleRepository) Assign(ctx context.Context, userID, roleName string) error {
	if userID == "" || roleName == "" {
		return domain.ErrInvalidInput
	}
	return r.client.put(ctx, "DynamoDB.PutUserRole", map[string]any{
		"PK":         userPK(userID),
		"SK":         userRoleSK(roleName),
		"EntityType": "USER_ROLE",
		"Name":       roleName,
	})
}

func (r *RoleRepository) ListByUser(ctx context.Context, userID string) ([]domain.Role, error) {
	items, err := r.client.queryPrefix(ctx, "DynamoDB.QueryUserRoles", userPK(userID), "ROLE#")
	if err != nil {
		return nil, err
	}
	roles := make([]domain.Role, 0, len(items))
	for _, item := range items {
		raw := struct {
			Name string `dynamodbav:"Name"`
		}{}
		if err := attributevalue.UnmarshalMap(item, &raw); err != nil {
			return nil, err
		}
		roles = append(roles, domain.Role{Name: raw.Name})
	}
	return roles, nil
}

func (r *PermissionRepository) Grant(ctx context.Context, userID, code string) error {
	if userID == "" || code == "" {
		return domain.ErrInvalidInput
	}
	return r.client.put(ctx, "DynamoDB.PutUserPermission", map[string]any{
		"PK":         userPK(userID),
		"SK":         userPermSK(code),
		"EntityType": "USER_PERMISSION",
		"Code":       code,
	})
}

func (r *PermissionRepository) ListByUser(ctx context.Context, userID string) ([]domain.Permission, error) {
	items, err := r.client.queryPrefix(ctx, "DynamoDB.QueryUserPermissions", userPK(userID), "PERM#")
	if err != nil {
		return nil, err
	}
	permissions := make([]domain.Permission, 0, len(items))
	for _, item := range items {
		raw := struct {
			Code string `dynamodbav:"Code"`
		}{}
		if err := attributevalue.UnmarshalMap(item, &raw); err != nil {
			return nil, err
		}
		permissions = append(permissions, domain.Permission{Code: raw.Code})
	}
	return permissions, nil
}
