package main

import "strconv"

// parseProject decodes a project block or Project declaration body into a
// Project whose refs hold identifiers only.
func parseProject(content string) *Project {
	p := &Project{}
	if v, ok := stringField(content, "name"); ok {
		p.Name = v
	}
	if v, ok := stringField(content, "description"); ok {
		p.Description = v
	}
	for _, id := range callArgs(content, "buildType") {
		p.BuildTypes = append(p.BuildTypes, &BuildType{ID: id})
	}
	for _, id := range callArgs(content, "subProject") {
		p.SubProjects = append(p.SubProjects, &Project{ID: id})
	}
	for _, id := range callArgs(content, "vcsRoot") {
		p.VcsRoots = append(p.VcsRoots, &VcsRoot{ID: id})
	}
	if body, ok := findBlock(content, "features"); ok {
		p.Features = parseFeatures(body)
	}
	return p
}

// parseBuildType decodes a BuildType or Template declaration body.
func parseBuildType(content string) *BuildType {
	bt := &BuildType{}
	if v, ok := stringField(content, "name"); ok {
		bt.Name = v
	}
	if body, ok := findBlock(content, "steps"); ok {
		bt.Steps = parseSteps(body)
	}
	if body, ok := findBlock(content, "triggers"); ok {
		bt.Triggers = parseTriggers(body)
	}
	if body, ok := findBlock(content, "features"); ok {
		bt.Features = parseFeatures(body)
	}
	if body, ok := findBlock(content, "params"); ok {
		bt.Params = parseParams(body)
	}
	if body, ok := findBlock(content, "vcs"); ok {
		bt.Vcs = parseVcs(body)
	}
	if v, ok := blockTextField(content, "artifactRules"); ok {
		bt.ArtifactRules = v
	}
	return bt
}

// parseSteps scans one steps block for every known step kind. Kinds are
// scanned in a fixed order and every match is appended without dedup, so the
// output groups steps by kind rather than by source position.
func parseSteps(content string) []*Step {
	var steps []*Step
	for _, body := range findBlocks(content, "script") {
		steps = append(steps, parseScriptStep(body))
	}
	for _, body := range findBlocks(content, "python") {
		steps = append(steps, parsePythonStep(body))
	}
	for _, body := range findBlocks(content, "powerShell") {
		steps = append(steps, parsePowershellStep(body))
	}
	for _, body := range findBlocks(content, "kotlinScript") {
		steps = append(steps, parseKotlinStep(body))
	}
	for _, body := range findBlocks(content, "step") {
		steps = append(steps, parseGenericStep(body))
	}
	return steps
}

func parseScriptStep(content string) *Step {
	s := &Step{Type: "script"}
	if v, ok := stringField(content, "name"); ok {
		s.Name = v
	}
	if v, ok := stringField(content, "id"); ok {
		s.ID = v
	}
	if v, ok := boolField(content, "enabled"); ok {
		s.Enabled = &v
	}
	if v, ok := stringField(content, "workingDir"); ok {
		s.WorkingDir = v
	}
	if v, ok := blockTextField(content, "scriptContent"); ok {
		s.ScriptContent = v
	}
	if body, ok := findBlock(content, "conditions"); ok {
		s.Conditions = parseConditions(body)
	}
	return s
}

// parsePythonStep decodes a python step; its script text sits in a nested
// `command = script { content = """...""" }` block.
func parsePythonStep(content string) *Step {
	s := &Step{Type: "python"}
	if v, ok := stringField(content, "name"); ok {
		s.Name = v
	}
	if v, ok := stringField(content, "id"); ok {
		s.ID = v
	}
	if body, ok := assignedBlock(content, "command", "script"); ok {
		if v, ok := blockTextField(body, "content"); ok {
			s.ScriptContent = v
		}
	}
	return s
}

func parsePowershellStep(content string) *Step {
	s := &Step{Type: "powershell"}
	if v, ok := stringField(content, "name"); ok {
		s.Name = v
	}
	if v, ok := stringField(content, "id"); ok {
		s.ID = v
	}
	if body, ok := assignedBlock(content, "scriptMode", "script"); ok {
		if v, ok := blockTextField(body, "content"); ok {
			s.ScriptContent = v
		}
	}
	if body, ok := findBlock(content, "conditions"); ok {
		s.Conditions = parseConditions(body)
	}
	return s
}

func parseKotlinStep(content string) *Step {
	s := &Step{Type: "kotlinScript"}
	if v, ok := stringField(content, "name"); ok {
		s.Name = v
	}
	if v, ok := stringField(content, "id"); ok {
		s.ID = v
	}
	if v, ok := boolField(content, "enabled"); ok {
		s.Enabled = &v
	}
	if v, ok := blockTextField(content, "content"); ok {
		s.Content = v
	}
	return s
}

// parseGenericStep decodes a plain `step {}` block; its type comes from the
// block's own type field rather than the block name.
func parseGenericStep(content string) *Step {
	s := &Step{}
	if v, ok := stringField(content, "name"); ok {
		s.Name = v
	}
	if v, ok := stringField(content, "id"); ok {
		s.ID = v
	}
	if v, ok := stringField(content, "type"); ok {
		s.Type = v
	}
	if v, ok := boolField(content, "enabled"); ok {
		s.Enabled = &v
	}
	if v, ok := taggedField(content, "executionMode", "BuildStep.ExecutionMode."); ok {
		s.ExecutionMode = v
	}
	if body, ok := findBlock(content, "params"); ok {
		s.Params = parseParams(body)
	}
	return s
}

// parseConditions decodes equals() and contains() calls, grouped by kind.
func parseConditions(content string) []*Condition {
	var conds []*Condition
	for _, pair := range callStringPairs(content, "equals") {
		conds = append(conds, &Condition{Type: "equals", Property: pair[0], Value: pair[1]})
	}
	for _, pair := range callStringPairs(content, "contains") {
		conds = append(conds, &Condition{Type: "contains", Property: pair[0], Value: pair[1]})
	}
	return conds
}

// parseTriggers decodes the vcs trigger blocks of a triggers body. The
// enabled flag is recorded as the literal string "true" or "false".
func parseTriggers(content string) []*Trigger {
	var triggers []*Trigger
	for _, body := range findBlocks(content, "vcs") {
		t := &Trigger{Type: "vcs"}
		if v, ok := boolField(body, "enabled"); ok {
			t.Enabled = strconv.FormatBool(v)
		}
		triggers = append(triggers, t)
	}
	return triggers
}

func parseFeatures(content string) []*Feature {
	var features []*Feature
	for range findBlocks(content, "perfmon") {
		features = append(features, &Feature{Type: "perfmon"})
	}
	for range findBlocks(content, "githubConnection") {
		features = append(features, &Feature{Type: "githubConnection"})
	}
	return features
}

// parseParams decodes the four parameter call shapes, grouped by kind. Only
// the name and the second (value or default) argument are kept.
func parseParams(content string) []*Param {
	var params []*Param
	for _, kind := range []string{"param", "select", "checkbox", "text"} {
		for _, pair := range callStringPairs(content, kind) {
			params = append(params, &Param{Type: kind, Name: pair[0], Value: pair[1]})
		}
	}
	return params
}

func parseVcs(content string) *VcsSettings {
	v := &VcsSettings{}
	if roots := callArgs(content, "root"); len(roots) > 0 {
		v.Root = roots[0]
	}
	return v
}

func parseVcsRoot(content string) *VcsRoot {
	r := &VcsRoot{}
	if v, ok := stringField(content, "name"); ok {
		r.Name = v
	}
	if v, ok := stringField(content, "url"); ok {
		r.URL = v
	}
	if v, ok := stringField(content, "branch"); ok {
		r.Branch = v
	}
	return r
}
