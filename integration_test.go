package main

import (
	"reflect"
	"testing"
)

// ===== END-TO-END PIPELINE TESTS =====

func TestParseMinimalScenario(t *testing.T) {
	source := `
project {
    buildType(Build1)
}

object Build1 : BuildType({
    name = "Compile"
    steps {
        script {
            name = "Run"
            scriptContent = """echo hi"""
        }
    }
})
`
	doc, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if doc.Version != "2.1" {
		t.Errorf("Version = %q, want default 2.1", doc.Version)
	}
	if len(doc.Project.BuildTypes) != 1 {
		t.Fatalf("BuildTypes = %+v, want 1", doc.Project.BuildTypes)
	}
	bt := doc.Project.BuildTypes[0]
	if bt.ID != "Build1" || bt.Name != "Compile" {
		t.Errorf("buildTypes[0] = %+v", bt)
	}
	if len(bt.Steps) != 1 {
		t.Fatalf("Steps = %+v, want 1", bt.Steps)
	}
	step := bt.Steps[0]
	if step.Type != "script" || step.Name != "Run" || step.ScriptContent != "echo hi" {
		t.Errorf("steps[0] = %+v", step)
	}
}

func TestParseFullSettings(t *testing.T) {
	source := `
import jetbrains.buildServer.configs.kotlin.*

version = "2024.03"

project {
    description = "Example pipeline"

    vcsRoot(MainRepo)
    buildType(Build)
    buildType(Missing)
    subProject(Tools)

    features {
        githubConnection {
            displayName = "GitHub"
        }
    }
}

object MainRepo : GitVcsRoot({
    name = "Main"
    url = "https://github.com/example/app.git"
    branch = "refs/heads/main"
})

object Build : BuildType({
    name = "Build & Test"
    artifactRules = """
        +:out/** => out.zip
    """
    vcs {
        root(MainRepo)
    }
    steps {
        script {
            name = "Compile"
            scriptContent = """
                make all
            """
        }
        python {
            name = "Report"
            command = script {
                content = """print("done")"""
            }
        }
    }
    triggers {
        vcs {
            enabled = false
        }
    }
    features {
        perfmon {
        }
    }
    params {
        param("env.CI", "true")
    }
})

object Tools : Project({
    name = "Tooling"
    buildType(ToolBuild)
})

object ToolBuild : BuildType({
    name = "Tool Build"
})
`
	doc, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if doc.Version != "2024.03" {
		t.Errorf("Version = %q", doc.Version)
	}
	p := doc.Project
	if p.Description != "Example pipeline" {
		t.Errorf("Description = %q", p.Description)
	}
	if len(p.Features) != 1 || p.Features[0].Type != "githubConnection" {
		t.Errorf("Features = %+v", p.Features)
	}

	if len(p.VcsRoots) != 1 {
		t.Fatalf("VcsRoots = %+v", p.VcsRoots)
	}
	if p.VcsRoots[0].ID != "MainRepo" || p.VcsRoots[0].URL != "https://github.com/example/app.git" {
		t.Errorf("VcsRoots[0] = %+v", p.VcsRoots[0])
	}

	if len(p.BuildTypes) != 2 {
		t.Fatalf("BuildTypes = %+v", p.BuildTypes)
	}
	build := p.BuildTypes[0]
	if build.ID != "Build" || build.Name != "Build & Test" {
		t.Errorf("BuildTypes[0] = %+v", build)
	}
	if build.ArtifactRules != "+:out/** => out.zip" {
		t.Errorf("ArtifactRules = %q", build.ArtifactRules)
	}
	if build.Vcs == nil || build.Vcs.Root != "MainRepo" {
		t.Errorf("Vcs = %+v", build.Vcs)
	}
	if len(build.Triggers) != 1 || build.Triggers[0].Enabled != "false" {
		t.Errorf("Triggers = %+v", build.Triggers)
	}
	if len(build.Params) != 1 || build.Params[0].Name != "env.CI" {
		t.Errorf("Params = %+v", build.Params)
	}
	// Kind scan order: the script step and the python step's inner script
	// block come first, then the python step itself.
	if len(build.Steps) != 3 {
		t.Fatalf("Steps = %+v, want 3", build.Steps)
	}
	if build.Steps[0].Type != "script" || build.Steps[0].Name != "Compile" || build.Steps[0].ScriptContent != "make all" {
		t.Errorf("Steps[0] = %+v", build.Steps[0])
	}
	if build.Steps[1].Type != "script" || build.Steps[1].Name != "" {
		t.Errorf("Steps[1] = %+v", build.Steps[1])
	}
	if build.Steps[2].Type != "python" || build.Steps[2].ScriptContent != `print("done")` {
		t.Errorf("Steps[2] = %+v", build.Steps[2])
	}

	// A ref with no declaration stays a bare id.
	if !reflect.DeepEqual(p.BuildTypes[1], &BuildType{ID: "Missing"}) {
		t.Errorf("BuildTypes[1] = %+v, want bare id", p.BuildTypes[1])
	}

	if len(p.SubProjects) != 1 {
		t.Fatalf("SubProjects = %+v", p.SubProjects)
	}
	tools := p.SubProjects[0]
	if tools.ID != "Tools" || tools.Name != "Tooling" {
		t.Errorf("SubProjects[0] = %+v", tools)
	}
	if len(tools.BuildTypes) != 1 || tools.BuildTypes[0].Name != "Tool Build" {
		t.Errorf("nested BuildTypes = %+v", tools.BuildTypes)
	}
}

func TestParseIdempotent(t *testing.T) {
	source := `
version = "2024.03"
project {
    buildType(Build1)
    subProject(Sub)
}
object Build1 : BuildType({
    name = "Compile"
    triggers {
        vcs {
            enabled = true
        }
    }
})
object Sub : Project({
    name = "Sub"
    buildType(Build1)
})
`
	first, err := Parse(source)
	if err != nil {
		t.Fatalf("first Parse: %v", err)
	}
	second, err := Parse(source)
	if err != nil {
		t.Fatalf("second Parse: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-running the pipeline changed the document:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestParseDegradesOnMalformedObjects(t *testing.T) {
	// The broken declaration is skipped; its ref stays bare, the rest of the
	// document still converts.
	source := `
project {
    buildType(Good)
    buildType(Broken)
}
object Good : BuildType({
    name = "Fine"
})
object Broken : BuildType({
    name = "Oops"
`
	doc, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Project.BuildTypes[0].Name != "Fine" {
		t.Errorf("BuildTypes[0] = %+v", doc.Project.BuildTypes[0])
	}
	if !reflect.DeepEqual(doc.Project.BuildTypes[1], &BuildType{ID: "Broken"}) {
		t.Errorf("BuildTypes[1] = %+v, want bare id", doc.Project.BuildTypes[1])
	}
}
