//go:build !gcloud

package config

// Validate accepts an empty NATS_URL; messaging is then disabled.
func (c *PubSubConfig) Validate() error {
	return nil
}
