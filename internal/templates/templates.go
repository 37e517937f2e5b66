// Package templates holds the built-in template payloads and wires them into
// a catalog. Content lives in per-component files as raw strings; this file
// owns the component groupings and the registry wiring.
package templates

import (
	"github.com/quarrydev/quarry/internal/catalog"
	"github.com/quarrydev/quarry/internal/checklist"
)

// Definition declares the built-in components, project-level files, and
// checklists. Plugins append to this before catalog construction.
func Definition() catalog.Definition {
	return catalog.Definition{
		Components: []catalog.Component{
			{
				Key:         "docs",
				Title:       "Documentation",
				Description: "Architecture overview, runbook, and data dictionary",
				Files: []catalog.Path{
					catalog.PathDocsArchitecture,
					catalog.PathDocsRunbook,
					catalog.PathDocsDataDictionary,
				},
			},
			{
				Key:         "devops",
				Title:       "DevOps Pipelines",
				Description: "Azure DevOps build and PR validation pipelines",
				Files: []catalog.Path{
					catalog.PathPipelineCI,
					catalog.PathPipelinePR,
				},
			},
			{
				Key:         "infrastructure",
				Title:       "Infrastructure as Code",
				Description: "Bicep templates for the data platform resource stack",
				Files: []catalog.Path{
					catalog.PathBicepMain,
					catalog.PathBicepStorage,
					catalog.PathBicepSearch,
					catalog.PathBicepKeyVault,
					catalog.PathBicepParameters,
				},
			},
			{
				Key:         "data-ingestion",
				Title:       "Data Ingestion",
				Description: "Chunking and vector store loading skeletons",
				Files: []catalog.Path{
					catalog.PathIngestionChunkProcessor,
					catalog.PathIngestionVectorStore,
					catalog.PathIngestionConfig,
				},
			},
			{
				Key:         "data-extraction",
				Title:       "Data Extraction",
				Description: "Document extraction and cognitive enrichment skeletons",
				Files: []catalog.Path{
					catalog.PathExtractionExtractor,
					catalog.PathExtractionCognitive,
				},
			},
			{
				Key:         "azure-functions",
				Title:       "Azure Functions",
				Description: "Timer-triggered data refresh function app",
				Files: []catalog.Path{
					catalog.PathFunctionApp,
					catalog.PathFunctionHost,
					catalog.PathFunctionRequirements,
				},
			},
		},
		ProjectFiles: []catalog.Path{
			catalog.PathRootReadme,
			catalog.PathRootGitignore,
		},
		Checklists: checklist.Defaults(),
	}
}

// NewRegistry returns a registry with every built-in generator installed.
func NewRegistry() *catalog.Registry {
	reg := catalog.NewRegistry()

	reg.MustRegister(catalog.PathRootReadme, projectReadme)
	reg.MustRegister(catalog.PathRootGitignore, static(gitignoreSrc))

	reg.MustRegister(catalog.PathDocsArchitecture, static(docsArchitectureSrc))
	reg.MustRegister(catalog.PathDocsRunbook, static(docsRunbookSrc))
	reg.MustRegister(catalog.PathDocsDataDictionary, static(docsDataDictionarySrc))

	reg.MustRegister(catalog.PathPipelineCI, static(pipelineCISrc))
	reg.MustRegister(catalog.PathPipelinePR, static(pipelinePRSrc))

	reg.MustRegister(catalog.PathBicepMain, static(bicepMainSrc))
	reg.MustRegister(catalog.PathBicepStorage, static(bicepStorageSrc))
	reg.MustRegister(catalog.PathBicepSearch, static(bicepSearchSrc))
	reg.MustRegister(catalog.PathBicepKeyVault, static(bicepKeyVaultSrc))
	reg.MustRegister(catalog.PathBicepParameters, static(bicepParametersSrc))

	reg.MustRegister(catalog.PathIngestionChunkProcessor, static(ingestionChunkProcessorSrc))
	reg.MustRegister(catalog.PathIngestionVectorStore, static(ingestionVectorStoreSrc))
	reg.MustRegister(catalog.PathIngestionConfig, static(ingestionConfigSrc))

	reg.MustRegister(catalog.PathExtractionExtractor, static(extractionExtractorSrc))
	reg.MustRegister(catalog.PathExtractionCognitive, static(extractionCognitiveSrc))

	reg.MustRegister(catalog.PathFunctionApp, static(functionAppSrc))
	reg.MustRegister(catalog.PathFunctionHost, static(functionHostSrc))
	reg.MustRegister(catalog.PathFunctionRequirements, static(functionRequirementsSrc))

	return reg
}

// NewCatalog builds the fully wired built-in catalog. Construction validates
// that every declared path has a generator and vice versa.
func NewCatalog() (*catalog.Catalog, error) {
	return catalog.New(Definition(), NewRegistry())
}

// static adapts a fixed payload to the Generator signature.
func static(content string) catalog.Generator {
	return func() (string, error) {
		return content, nil
	}
}
