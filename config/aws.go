package config

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
)

// NewSession opens an AWS session with the static credentials from the
// config. Endpoint overrides the SQS endpoint, e.g. for a local emulator.
func (c *AWSsqsConfig) NewSession() (*session.Session, error) {
	awsConf := &aws.Config{
		Region:      aws.String(c.Region),
		Credentials: credentials.NewStaticCredentials(c.ClientId, c.ClientSecret, c.ClientToken),
	}
	if c.Endpoint != "" {
		awsConf.Endpoint = aws.String(c.Endpoint)
	}
	sess, err := session.NewSession(awsConf)
	if err != nil {
		return nil, err
	}

	if _, err := sess.Config.Credentials.Get(); err != nil {
		return nil, fmt.Errorf("Cannot assign session with credentials\n%s", err)
	}
	return sess, nil
}
