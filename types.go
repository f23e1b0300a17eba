package main

// Document is the root of the converted configuration.
type Document struct {
	Version string   `yaml:"version" json:"version"`
	Project *Project `yaml:"project" json:"project"`
}

// Project holds a project declaration or the root project block. Refs start
// as id-only records and are filled in during assembly when a matching
// declaration exists.
type Project struct {
	ID          string       `yaml:"id,omitempty" json:"id,omitempty"`
	Name        string       `yaml:"name,omitempty" json:"name,omitempty"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	BuildTypes  []*BuildType `yaml:"buildTypes,omitempty" json:"buildTypes,omitempty"`
	SubProjects []*Project   `yaml:"subProjects,omitempty" json:"subProjects,omitempty"`
	VcsRoots    []*VcsRoot   `yaml:"vcsRoots,omitempty" json:"vcsRoots,omitempty"`
	Features    []*Feature   `yaml:"features,omitempty" json:"features,omitempty"`
}

type BuildType struct {
	ID            string       `yaml:"id,omitempty" json:"id,omitempty"`
	Name          string       `yaml:"name,omitempty" json:"name,omitempty"`
	Steps         []*Step      `yaml:"steps,omitempty" json:"steps,omitempty"`
	Triggers      []*Trigger   `yaml:"triggers,omitempty" json:"triggers,omitempty"`
	Features      []*Feature   `yaml:"features,omitempty" json:"features,omitempty"`
	Params        []*Param     `yaml:"params,omitempty" json:"params,omitempty"`
	Vcs           *VcsSettings `yaml:"vcs,omitempty" json:"vcs,omitempty"`
	ArtifactRules string       `yaml:"artifactRules,omitempty" json:"artifactRules,omitempty"`
}

// Step covers every recognized step kind; Type discriminates. Enabled is a
// pointer so an absent flag is not serialized as false.
type Step struct {
	Type          string       `yaml:"type,omitempty" json:"type,omitempty"`
	Name          string       `yaml:"name,omitempty" json:"name,omitempty"`
	ID            string       `yaml:"id,omitempty" json:"id,omitempty"`
	Enabled       *bool        `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	WorkingDir    string       `yaml:"workingDir,omitempty" json:"workingDir,omitempty"`
	ScriptContent string       `yaml:"scriptContent,omitempty" json:"scriptContent,omitempty"`
	Content       string       `yaml:"content,omitempty" json:"content,omitempty"`
	ExecutionMode string       `yaml:"executionMode,omitempty" json:"executionMode,omitempty"`
	Params        []*Param     `yaml:"params,omitempty" json:"params,omitempty"`
	Conditions    []*Condition `yaml:"conditions,omitempty" json:"conditions,omitempty"`
}

type Condition struct {
	Type     string `yaml:"type" json:"type"`
	Property string `yaml:"property" json:"property"`
	Value    string `yaml:"value" json:"value"`
}

// Trigger.Enabled is the literal string "true" or "false", kept that way for
// compatibility with the document format this tool replaces.
type Trigger struct {
	Type    string `yaml:"type" json:"type"`
	Enabled string `yaml:"enabled,omitempty" json:"enabled,omitempty"`
}

type Feature struct {
	Type string `yaml:"type" json:"type"`
}

type Param struct {
	Type  string `yaml:"type" json:"type"`
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

type VcsSettings struct {
	Root string `yaml:"root,omitempty" json:"root,omitempty"`
}

type VcsRoot struct {
	ID     string `yaml:"id,omitempty" json:"id,omitempty"`
	Name   string `yaml:"name,omitempty" json:"name,omitempty"`
	URL    string `yaml:"url,omitempty" json:"url,omitempty"`
	Branch string `yaml:"branch,omitempty" json:"branch,omitempty"`
}
