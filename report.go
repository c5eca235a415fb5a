package resman

import (
	"context"
	"os"

	"github.com/frantjc/resman/android"
	"github.com/frantjc/resman/apktool"
	xslice "github.com/frantjc/x/slice"
	"github.com/opencontainers/go-digest"
)

// Report is everything resman can tell about an Android project or
// decoded .apk, shaped for encoding as JSON, YAML or a property list.
type Report struct {
	ManifestFile              string           `json:"manifestFile" yaml:"manifestFile" plist:"manifestFile"`
	ManifestDigest            digest.Digest    `json:"manifestDigest,omitempty" yaml:"manifestDigest,omitempty" plist:"manifestDigest,omitempty"`
	Hash                      digest.Digest    `json:"hash" yaml:"hash" plist:"hash"`
	PackageName               string           `json:"packageName,omitempty" yaml:"packageName,omitempty" plist:"packageName,omitempty"`
	RClassName                string           `json:"rClassName,omitempty" yaml:"rClassName,omitempty" plist:"rClassName,omitempty"`
	ApplicationName           string           `json:"applicationName,omitempty" yaml:"applicationName,omitempty" plist:"applicationName,omitempty"`
	Application               *ClassReport     `json:"application,omitempty" yaml:"application,omitempty" plist:"application,omitempty"`
	ProcessName               string           `json:"processName,omitempty" yaml:"processName,omitempty" plist:"processName,omitempty"`
	MinSDKVersion             int              `json:"minSdkVersion" yaml:"minSdkVersion" plist:"minSdkVersion"`
	MinSDKVersionSpecified    bool             `json:"minSdkVersionSpecified" yaml:"minSdkVersionSpecified" plist:"minSdkVersionSpecified"`
	TargetSDKVersion          int              `json:"targetSdkVersion" yaml:"targetSdkVersion" plist:"targetSdkVersion"`
	TargetSDKVersionSpecified bool             `json:"targetSdkVersionSpecified" yaml:"targetSdkVersionSpecified" plist:"targetSdkVersionSpecified"`
	EffectiveSDKVersion       int              `json:"effectiveSdkVersion" yaml:"effectiveSdkVersion" plist:"effectiveSdkVersion"`
	ApplicationFlags          []string         `json:"applicationFlags" yaml:"applicationFlags" plist:"applicationFlags"`
	Receivers                 []ReceiverReport `json:"receivers,omitempty" yaml:"receivers,omitempty" plist:"receivers,omitempty"`
	ResourceDirs              []string         `json:"resourceDirs" yaml:"resourceDirs" plist:"resourceDirs"`
	AssetsDir                 string           `json:"assetsDir" yaml:"assetsDir" plist:"assetsDir"`
	RClass                    *ClassReport     `json:"rClass,omitempty" yaml:"rClass,omitempty" plist:"rClass,omitempty"`
	Diagnostics               []string         `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty" plist:"diagnostics,omitempty"`
	APK                       *APKReport       `json:"apk,omitempty" yaml:"apk,omitempty" plist:"apk,omitempty"`
}

type ClassReport struct {
	Name   string `json:"name" yaml:"name" plist:"name"`
	Source string `json:"source,omitempty" yaml:"source,omitempty" plist:"source,omitempty"`
}

type ReceiverReport struct {
	ClassName string   `json:"className" yaml:"className" plist:"className"`
	Actions   []string `json:"actions" yaml:"actions" plist:"actions"`
}

type APKReport struct {
	Name                    string   `json:"name" yaml:"name" plist:"name"`
	APKToolVersion          string   `json:"apktoolVersion,omitempty" yaml:"apktoolVersion,omitempty" plist:"apktoolVersion,omitempty"`
	VersionName             string   `json:"versionName,omitempty" yaml:"versionName,omitempty" plist:"versionName,omitempty"`
	VersionCode             string   `json:"versionCode,omitempty" yaml:"versionCode,omitempty" plist:"versionCode,omitempty"`
	SemVer                  string   `json:"semver,omitempty" yaml:"semver,omitempty" plist:"semver,omitempty"`
	MinSDKVersion           int      `json:"minSdkVersion,omitempty" yaml:"minSdkVersion,omitempty" plist:"minSdkVersion,omitempty"`
	TargetSDKVersion        int      `json:"targetSdkVersion,omitempty" yaml:"targetSdkVersion,omitempty" plist:"targetSdkVersion,omitempty"`
	// SigningCertFingerprints are SHA-256, colon-separated hex.
	SigningCertFingerprints []string `json:"signingCertFingerprints,omitempty" yaml:"signingCertFingerprints,omitempty" plist:"signingCertFingerprints,omitempty"`
}

func newClassReport(ref *android.ClassRef) *ClassReport {
	if ref == nil {
		return nil
	}

	return &ClassReport{Name: ref.Name, Source: ref.Source}
}

// NewReport describes d. If loc is non-nil it is used to locate the
// R class and the application class. Problems that stop part of the
// report from being filled in are recorded as Diagnostics rather than
// returned, so that a Report can always be produced.
func NewReport(ctx context.Context, d *android.Descriptor, loc android.ClassLocator) *Report {
	var (
		log    = LoggerFrom(ctx).WithValues("manifest", d.ManifestFile())
		report = &Report{
			ManifestFile:              d.ManifestFile(),
			Hash:                      d.Hash(),
			PackageName:               d.PackageName(),
			RClassName:                d.RClassName(),
			ApplicationName:           d.ApplicationName(),
			ProcessName:               d.ProcessName(),
			MinSDKVersion:             d.MinSDKVersion(),
			MinSDKVersionSpecified:    d.MinSDKVersionSpecified(),
			TargetSDKVersion:          d.TargetSDKVersion(),
			TargetSDKVersionSpecified: d.TargetSDKVersionSpecified(),
			EffectiveSDKVersion:       d.EffectiveSDKVersion(),
			ApplicationFlags:          d.ApplicationFlags().Names(),
			Receivers: xslice.Map(d.Receivers(), func(r android.Receiver, _ int) ReceiverReport {
				return ReceiverReport{ClassName: r.ClassName, Actions: r.Actions}
			}),
			ResourceDirs: d.ResourceDirs(),
			AssetsDir:    d.AssetsDir(),
			Diagnostics:  []string{},
		}
	)

	if f, err := os.Open(d.ManifestFile()); err == nil {
		defer f.Close()

		if report.ManifestDigest, err = digest.FromReader(f); err != nil {
			log.Error(err, "digesting manifest")
		}
	}

	if err := d.ParseErr(); err != nil {
		report.Diagnostics = append(report.Diagnostics, err.Error())
	}

	if err := d.Validate(); err != nil {
		report.Diagnostics = append(report.Diagnostics, err.Error())
	} else if loc != nil {
		if resourcePaths, err := d.ResourcePaths(loc); err != nil {
			report.Diagnostics = append(report.Diagnostics, err.Error())
		} else if len(resourcePaths) > 0 {
			report.RClass = newClassReport(resourcePaths[0].RClass)
		}

		if app, err := d.Application(loc); err != nil {
			report.Diagnostics = append(report.Diagnostics, err.Error())
		} else {
			report.Application = newClassReport(app)
		}
	}

	log.V(1).Info("described", "package", report.PackageName, "diagnostics", len(report.Diagnostics))

	return report
}

// NewAPKReport describes the decoded .apk, including what apktool
// recorded about it in apktool.yml.
func NewAPKReport(ctx context.Context, ad *android.APKDecoder) (*Report, error) {
	d, err := ad.Descriptor(ctx)
	if err != nil {
		return nil, err
	}

	// apktool is run without decoding sources, so there are no classes
	// to locate.
	report := NewReport(ctx, d, nil)
	report.APK = &APKReport{Name: ad.Name}

	if metadata, err := ad.Metadata(ctx); err != nil {
		report.Diagnostics = append(report.Diagnostics, err.Error())
	} else {
		report.APK = newAPKReport(ad.Name, metadata)
	}

	if fingerprints, err := ad.SigningCertFingerprints(ctx); err != nil {
		report.Diagnostics = append(report.Diagnostics, err.Error())
	} else {
		report.APK.SigningCertFingerprints = fingerprints
	}

	return report, nil
}

func newAPKReport(name string, metadata *apktool.Metadata) *APKReport {
	apkReport := &APKReport{
		Name:           name,
		APKToolVersion: metadata.Version,
		SemVer:         metadata.SemVer(),
	}

	if metadata.VersionInfo != nil {
		apkReport.VersionName = metadata.VersionInfo.VersionName
		apkReport.VersionCode = metadata.VersionInfo.VersionCode
	}

	apkReport.MinSDKVersion, apkReport.TargetSDKVersion = metadata.SDKVersions()

	return apkReport
}
