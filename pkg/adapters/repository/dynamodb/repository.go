package dynamodb

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
	"github.com/wadjakorntonsri/cloud-resume/pkg/ports"
)

// Attribute names of the visitor table: IpAddress is the partition key and
// Timestamp the sort key.
const (
	AttrSourceAddress = "IpAddress"
	AttrArrivalTime   = "Timestamp"
)

// API is the subset of the DynamoDB client used by Repository.
type API interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

type Repository struct {
	client API
	table  string
}

var _ ports.VisitorStore = (*Repository)(nil)

func NewRepository(client API, table string) *Repository {
	return &Repository{client: client, table: table}
}

func (r *Repository) Insert(ctx context.Context, rec domain.VisitorRecord) error {
	_, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      MarshalRecord(rec),
	})
	return err
}

// Scan walks every page of the table.
func (r *Repository) Scan(ctx context.Context) ([]domain.VisitorRecord, error) {
	records := []domain.VisitorRecord{}
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			rec, err := UnmarshalRecord(item)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
	}
	return records, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	_, err := r.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.table),
	})
	return err
}

func (r *Repository) Close() error { return nil }

func MarshalRecord(rec domain.VisitorRecord) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		AttrSourceAddress: &types.AttributeValueMemberS{Value: rec.SourceAddress},
		AttrArrivalTime:   &types.AttributeValueMemberN{Value: strconv.FormatInt(rec.ArrivalTime, 10)},
	}
}

func UnmarshalRecord(item map[string]types.AttributeValue) (domain.VisitorRecord, error) {
	var rec domain.VisitorRecord

	addr, ok := item[AttrSourceAddress].(*types.AttributeValueMemberS)
	if !ok {
		return rec, fmt.Errorf("item missing string attribute %s", AttrSourceAddress)
	}
	ts, ok := item[AttrArrivalTime].(*types.AttributeValueMemberN)
	if !ok {
		return rec, fmt.Errorf("item missing number attribute %s", AttrArrivalTime)
	}
	n, err := strconv.ParseInt(ts.Value, 10, 64)
	if err != nil {
		return rec, fmt.Errorf("parse %s: %w", AttrArrivalTime, err)
	}

	rec.SourceAddress = addr.Value
	rec.ArrivalTime = n
	return rec, nil
}
