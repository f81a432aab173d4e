package main

import (
	"context"

	"github.com/ATenderholt/rainbow-notify/internal/settings"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

var credentials aws.CredentialsProviderFunc = func(ctx context.Context) (aws.Credentials, error) {
	return aws.Credentials{AccessKeyID: "ABC", SecretAccessKey: "EFG", CanExpire: false}, nil
}

func snsEndpointResolver(cfg *settings.Config) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if cfg.SnsEndpoint == "" {
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		}

		return aws.Endpoint{
			URL:               cfg.SnsEndpoint,
			HostnameImmutable: true,
		}, nil
	}
}

func NewSnsClient(cfg *settings.Config) *sns.Client {
	config := aws.Config{
		Region:                      cfg.Region,
		Credentials:                 credentials,
		EndpointResolverWithOptions: snsEndpointResolver(cfg),
	}

	return sns.NewFromConfig(config)
}
