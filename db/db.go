package db

import (
	"strconv"

	"github.com/jsphweid/formdex/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// GetPieceMetadatas looks up stored metadata for up to 10 piece paths.
// Pieces without a row simply stay out of the result map.
func GetPieceMetadatas(paths []string) map[string]model.PieceInfo {
	if len(paths) > 10 {
		panic("Not supposed to pass in more than 10 paths!")
	}

	res := make(map[string]model.PieceInfo)

	if len(paths) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, path := range paths {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(path),
		}
		keys = append(keys, key)
	}

	endpoint := "http://localhost:8000"
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}

	client := dynamodb.New(session)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			"formdex-metadata": {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses["formdex-metadata"] {
		var info model.PieceInfo
		if v["Year"].N != nil {
			year, _ := strconv.ParseUint(*v["Year"].N, 10, 32)
			info.Year = uint(year)
		}
		info.Artist = *v["Artist"].S
		info.Release = *v["Release"].S
		info.Title = *v["Title"].S
		res[*v["PK"].S] = info
	}

	return res
}
