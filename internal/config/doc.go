// Package config resolves runtime settings from the environment. Values are
// read through Viper with the branding env prefix (CREATEKAPP_). There is no
// config file: the tool is a one-shot setup command and its source owner and
// branch are fixed at build time.
package config
