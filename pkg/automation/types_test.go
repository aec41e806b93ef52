package automation_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

// roundTrip decodes raw into T, checks that encoding it again yields the same
// document and returns the decoded value.
func roundTrip[T any](t *testing.T, raw string) *T {
	t.Helper()

	var value T
	require.NoError(t, json.Unmarshal([]byte(raw), &value))

	encoded, err := json.Marshal(&value)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(encoded))

	return &value
}

func utc(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		panic(err)
	}

	return parsed.UTC()
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestModels_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		raw   string
		check func(t *testing.T, raw string)
	}{
		{
			name: "job",
			raw: `{
				"id": "` + accountID + `/jobs/job-1",
				"name": "job-1",
				"type": "Microsoft.Automation/AutomationAccounts/Jobs",
				"properties": {
					"runbook": {"name": "hello"},
					"startedBy": "operator",
					"runOn": "hybrid-group",
					"jobId": "5b8a3960-e8ab-45f6-bec6-567df8467d1a",
					"creationTime": "2018-02-01T05:53:30.243Z",
					"status": "Completed",
					"statusDetails": "None",
					"startTime": "2018-02-01T05:53:33.53Z",
					"endTime": "2018-02-01T05:53:44.87Z",
					"exception": "boom",
					"lastModifiedTime": "2018-02-01T05:53:44.87Z",
					"lastStatusModifiedTime": "2018-02-01T05:53:44.87Z",
					"parameters": {"tag01": "value01"},
					"provisioningState": "Succeeded"
				}
			}`,
			check: func(t *testing.T, raw string) {
				t.Helper()

				job := roundTrip[automation.Job](t, raw)
				assert.Equal(t, "job-1", job.Name)
				require.NotNil(t, job.Properties)
				assert.Equal(t, "hello", job.Properties.Runbook.Name)
				assert.Equal(t, "Completed", job.Properties.Status)
				require.NotNil(t, job.Properties.StartTime)
				require.NotNil(t, job.Properties.EndTime)
				assert.Equal(t, utc("2018-02-01T05:53:33.53Z"), *job.Properties.StartTime)
				assert.Equal(t, utc("2018-02-01T05:53:44.87Z"), *job.Properties.EndTime)
				assert.Equal(t, 11340*time.Millisecond, job.Properties.EndTime.Sub(*job.Properties.StartTime))
				assert.Equal(t, map[string]string{"tag01": "value01"}, job.Properties.Parameters)
			},
		},
		{
			name: "schedule",
			raw: `{
				"id": "` + accountID + `/schedules/weekly",
				"name": "weekly",
				"type": "Microsoft.Automation/AutomationAccounts/Schedules",
				"properties": {
					"startTime": "2017-03-27T17:28:57.2494819Z",
					"startTimeOffsetMinutes": 60,
					"expiryTime": "9999-12-31T17:28:57.2494819Z",
					"expiryTimeOffsetMinutes": 60,
					"isEnabled": true,
					"nextRun": "2017-03-28T17:28:57.2494819Z",
					"nextRunOffsetMinutes": 60,
					"interval": 2,
					"frequency": "Week",
					"timeZone": "Pacific/Honolulu",
					"advancedSchedule": {
						"weekDays": ["Monday", "Friday"],
						"monthDays": [1, 15],
						"monthlyOccurrences": [{"occurrence": 2, "day": "Friday"}]
					},
					"creationTime": "2017-03-26T17:28:57.2494819Z",
					"lastModifiedTime": "2017-03-26T17:28:57.2494819Z",
					"description": "my schedule"
				}
			}`,
			check: func(t *testing.T, raw string) {
				t.Helper()

				schedule := roundTrip[automation.Schedule](t, raw)
				require.NotNil(t, schedule.Properties)
				assert.Equal(t, "Week", schedule.Properties.Frequency)
				require.NotNil(t, schedule.Properties.Interval)
				assert.Equal(t, int64(2), *schedule.Properties.Interval)
				require.NotNil(t, schedule.Properties.ExpiryTime)
				assert.Equal(t, 9999, schedule.Properties.ExpiryTime.Year())
				assert.InDelta(t, 60, schedule.Properties.StartTimeOffsetMinutes, 0)
				require.NotNil(t, schedule.Properties.AdvancedSchedule)
				assert.Equal(t, []int32{1, 15}, schedule.Properties.AdvancedSchedule.MonthDays)
				require.Len(t, schedule.Properties.AdvancedSchedule.MonthlyOccurrences, 1)
				assert.Equal(t, int32(2), *schedule.Properties.AdvancedSchedule.MonthlyOccurrences[0].Occurrence)
			},
		},
		{
			name: "dsc node",
			raw: `{
				"id": "` + accountID + `/nodes/node-1",
				"name": "server01",
				"type": "Microsoft.Automation/AutomationAccounts/nodes",
				"properties": {
					"lastSeen": "2017-03-01T23:16:10.4Z",
					"registrationTime": "2016-11-30T22:30:36.1Z",
					"ip": "10.0.0.4",
					"accountId": "e3b3cc8e-9bd2-4b6b-8c6c-3a1b7b6a0f8e",
					"nodeConfiguration": {"name": "SetupServer.localhost"},
					"status": "Compliant",
					"nodeId": "node-1",
					"etag": "W/\"1\"",
					"totalCount": 1,
					"extensionHandler": [{"name": "Microsoft.OSTCExtensions.DSCForLinux", "version": "2.70.0.0"}]
				}
			}`,
			check: func(t *testing.T, raw string) {
				t.Helper()

				node := roundTrip[automation.DscNode](t, raw)
				require.NotNil(t, node.Properties)
				assert.Equal(t, "SetupServer.localhost", node.Properties.NodeConfiguration.Name)
				assert.Equal(t, utc("2017-03-01T23:16:10.4Z"), *node.Properties.LastSeen)
				assert.Equal(t, `W/"1"`, node.Properties.Etag)
				require.Len(t, node.Properties.ExtensionHandler, 1)
				assert.Equal(t, "2.70.0.0", node.Properties.ExtensionHandler[0].Version)
			},
		},
		{
			name: "software update configuration",
			raw: `{
				"id": "` + accountID + `/softwareUpdateConfigurations/patch",
				"name": "patch",
				"type": "Microsoft.Automation/AutomationAccounts/softwareUpdateConfigurations",
				"properties": {
					"updateConfiguration": {
						"operatingSystem": "Windows",
						"windows": {
							"includedUpdateClassifications": "Critical",
							"excludedKbNumbers": ["168934", "168973"],
							"rebootSetting": "IfRequired"
						},
						"duration": "PT2H",
						"azureVirtualMachines": ["/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Compute/virtualMachines/vm-01"],
						"targets": {
							"azureQueries": [{
								"scope": ["/subscriptions/sub/resourceGroups/rg"],
								"locations": ["westus"],
								"tagSettings": {"tags": {"tag1": ["tag1Value1", "tag1Value2"]}, "filterOperator": "All"}
							}]
						}
					},
					"scheduleInfo": {
						"startTime": "2017-10-19T12:22:57Z",
						"expiryTime": "2018-11-09T11:22:57Z",
						"isEnabled": true,
						"interval": 1,
						"frequency": "Hour",
						"timeZone": "America/Los_Angeles"
					},
					"provisioningState": "Succeeded",
					"creationTime": "2017-10-19T12:22:57Z",
					"createdBy": "operator",
					"lastModifiedTime": "2017-10-19T12:22:57Z",
					"lastModifiedBy": "operator",
					"tasks": {"preTask": {"parameters": {"COMPUTERNAME": "Computer1"}, "source": "HelloWorld"}}
				}
			}`,
			check: func(t *testing.T, raw string) {
				t.Helper()

				suc := roundTrip[automation.SoftwareUpdateConfiguration](t, raw)
				require.NotNil(t, suc.Properties)
				require.NotNil(t, suc.Properties.UpdateConfiguration)
				assert.Equal(t, "PT2H", suc.Properties.UpdateConfiguration.Duration)
				assert.Equal(t, []string{"168934", "168973"}, suc.Properties.UpdateConfiguration.Windows.ExcludedKbNumbers)
				require.Len(t, suc.Properties.UpdateConfiguration.Targets.AzureQueries, 1)
				assert.Equal(t,
					[]string{"tag1Value1", "tag1Value2"},
					suc.Properties.UpdateConfiguration.Targets.AzureQueries[0].TagSettings.Tags["tag1"])
				require.NotNil(t, suc.Properties.ScheduleInfo)
				assert.Equal(t, "Hour", suc.Properties.ScheduleInfo.Frequency)
				assert.Equal(t, utc("2018-11-09T11:22:57Z"), *suc.Properties.ScheduleInfo.ExpiryTime)
				assert.Equal(t, "HelloWorld", suc.Properties.Tasks.PreTask.Source)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.check(t, tt.raw)
		})
	}
}

func TestModels_ServiceOffsets(t *testing.T) {
	t.Parallel()

	var job automation.Job

	raw := `{"properties": {"startTime": "2018-02-01T05:53:33.53+00:00", "endTime": "2018-02-01T13:53:44.87+08:00"}}`
	require.NoError(t, json.Unmarshal([]byte(raw), &job))

	assert.True(t, utc("2018-02-01T05:53:33.53Z").Equal(*job.Properties.StartTime))
	assert.True(t, utc("2018-02-01T05:53:44.87Z").Equal(*job.Properties.EndTime))
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestParameters_Encode(t *testing.T) {
	t.Parallel()

	start := time.Date(2017, 3, 27, 17, 28, 57, 0, time.UTC)
	expiry := start.AddDate(0, 1, 0)
	one := int64(1)
	zero := int64(0)
	second := int32(2)
	disabled := false

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{
			name: "job create",
			value: automation.JobCreateParameters{Properties: &automation.JobCreateProperties{
				Runbook:    &automation.RunbookAssociationProperty{Name: "hello"},
				Parameters: map[string]string{"key01": "value01"},
			}},
			expected: `{"properties":{"runbook":{"name":"hello"},"parameters":{"key01":"value01"}}}`,
		},
		{
			name: "job create on hybrid worker",
			value: automation.JobCreateParameters{Properties: &automation.JobCreateProperties{
				Runbook: &automation.RunbookAssociationProperty{Name: "hello"},
				RunOn:   "hybrid-group",
			}},
			expected: `{"properties":{"runbook":{"name":"hello"},"runOn":"hybrid-group"}}`,
		},
		{
			name: "hourly schedule",
			value: automation.ScheduleCreateOrUpdateParameters{
				Name: "hourly",
				Properties: &automation.ScheduleCreateOrUpdateProperties{
					Description: "runs every hour",
					StartTime:   &start,
					ExpiryTime:  &expiry,
					Interval:    &one,
					Frequency:   "Hour",
					TimeZone:    "UTC",
				},
			},
			expected: `{"name":"hourly","properties":{"description":"runs every hour",` +
				`"startTime":"2017-03-27T17:28:57Z","expiryTime":"2017-04-27T17:28:57Z",` +
				`"interval":1,"frequency":"Hour","timeZone":"UTC"}}`,
		},
		{
			name: "monthly schedule keeps an explicit zero interval",
			value: automation.ScheduleCreateOrUpdateParameters{
				Name: "monthly",
				Properties: &automation.ScheduleCreateOrUpdateProperties{
					StartTime: &start,
					Interval:  &zero,
					Frequency: "Month",
					AdvancedSchedule: &automation.AdvancedSchedule{
						MonthlyOccurrences: []automation.AdvancedScheduleMonthlyOccurrence{{Occurrence: &second, Day: "Monday"}},
					},
				},
			},
			expected: `{"name":"monthly","properties":{"startTime":"2017-03-27T17:28:57Z","interval":0,` +
				`"frequency":"Month","advancedSchedule":{"monthlyOccurrences":[{"occurrence":2,"day":"Monday"}]}}}`,
		},
		{
			name: "schedule update",
			value: automation.ScheduleUpdateParameters{
				Name:       "hourly",
				Properties: &automation.ScheduleUpdateProperties{IsEnabled: &disabled},
			},
			expected: `{"name":"hourly","properties":{"isEnabled":false}}`,
		},
		{
			name: "dsc node update",
			value: automation.DscNodeUpdateParameters{
				NodeID: "node-1",
				Properties: &automation.DscNodeUpdateProperties{
					NodeConfiguration: &automation.DscNodeConfigurationAssociationProperty{Name: "SetupServer.localhost"},
				},
			},
			expected: `{"nodeId":"node-1","properties":{"nodeConfiguration":{"name":"SetupServer.localhost"}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			encoded, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(encoded))
		})
	}
}
