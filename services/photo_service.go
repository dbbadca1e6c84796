package services

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// PhotoService sanity-checks surplus evidence photos: a meal-log photo
// should actually show food before it lands next to the audit record.
type PhotoService struct {
	client *rekognition.Client
}

func NewPhotoService() (*PhotoService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &PhotoService{client: rekognition.NewFromConfig(cfg)}, nil
}

// DetectLabels returns the top labels for a base64-encoded image.
func (p *PhotoService) DetectLabels(base64Img string) ([]string, error) {
	idx := strings.Index(base64Img, ",")
	if idx < 0 || !strings.HasPrefix(base64Img, "data:image") {
		return nil, errors.New("invalid data URI")
	}
	data, err := base64.StdEncoding.DecodeString(base64Img[idx+1:])
	if err != nil {
		return nil, err
	}

	out, err := p.client.DetectLabels(context.TODO(), &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, l := range out.Labels {
		labels = append(labels, *l.Name)
	}
	return labels, nil
}

// LooksLikeFood reports whether any detected label suggests the photo
// shows food.
func (p *PhotoService) LooksLikeFood(base64Img string) (bool, []string, error) {
	labels, err := p.DetectLabels(base64Img)
	if err != nil {
		return false, nil, err
	}
	for _, l := range labels {
		switch strings.ToLower(l) {
		case "food", "meal", "dish", "produce", "vegetable", "fruit", "bread", "rice", "curry":
			return true, labels, nil
		}
	}
	return false, labels, nil
}
