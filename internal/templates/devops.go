package templates

const pipelineCISrc = `# Azure DevOps build pipeline for the data platform.
# Builds, tests, and deploys infrastructure plus the function app.

trigger:
  branches:
    include:
      - main

pool:
  vmImage: ubuntu-latest

variables:
  pythonVersion: "3.11"
  azureServiceConnection: data-platform-arm

stages:
  - stage: Validate
    jobs:
      - job: Lint
        steps:
          - task: UsePythonVersion@0
            inputs:
              versionSpec: $(pythonVersion)
          - script: |
              pip install -r src/azure-functions/data-refresh/requirements.txt
              pip install ruff pytest
              ruff check src/
            displayName: Lint
          - script: pytest src/ --junitxml=test-results.xml
            displayName: Unit tests
          - task: PublishTestResults@2
            condition: always()
            inputs:
              testResultsFiles: test-results.xml

      - job: BicepWhatIf
        steps:
          - task: AzureCLI@2
            inputs:
              azureSubscription: $(azureServiceConnection)
              scriptType: bash
              scriptLocation: inlineScript
              inlineScript: |
                az deployment sub what-if \
                  --location westeurope \
                  --template-file infrastructure/bicep/main.bicep \
                  --parameters infrastructure/bicep/parameters/dev.bicepparam

  - stage: DeployDev
    dependsOn: Validate
    condition: and(succeeded(), eq(variables['Build.SourceBranch'], 'refs/heads/main'))
    jobs:
      - deployment: Infrastructure
        environment: dev
        strategy:
          runOnce:
            deploy:
              steps:
                - checkout: self
                - task: AzureCLI@2
                  inputs:
                    azureSubscription: $(azureServiceConnection)
                    scriptType: bash
                    scriptLocation: inlineScript
                    inlineScript: |
                      az deployment sub create \
                        --location westeurope \
                        --template-file infrastructure/bicep/main.bicep \
                        --parameters infrastructure/bicep/parameters/dev.bicepparam
      - deployment: FunctionApp
        dependsOn: Infrastructure
        environment: dev
        strategy:
          runOnce:
            deploy:
              steps:
                - checkout: self
                - task: AzureFunctionApp@2
                  inputs:
                    azureSubscription: $(azureServiceConnection)
                    appType: functionAppLinux
                    appName: func-dataplatform-dev
                    package: src/azure-functions/data-refresh
`

const pipelinePRSrc = `# Lightweight validation pipeline for pull requests.

trigger: none

pr:
  branches:
    include:
      - main

pool:
  vmImage: ubuntu-latest

steps:
  - task: UsePythonVersion@0
    inputs:
      versionSpec: "3.11"

  - script: |
      pip install -r src/azure-functions/data-refresh/requirements.txt
      pip install ruff pytest
    displayName: Install dependencies

  - script: ruff check src/
    displayName: Lint

  - script: pytest src/ -x
    displayName: Unit tests

  - script: az bicep build --file infrastructure/bicep/main.bicep
    displayName: Compile Bicep
`
